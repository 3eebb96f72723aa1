package yieldd

// Version should be set by the release tag at build time:
//
//   go build -ldflags "-X github.com/iov-one/yieldweave/cmd/yieldd/app.Version=v0.1.0"
var Version = "dev"
