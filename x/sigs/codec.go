package sigs

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/yieldweave"
)

// UserData just stores the data and is used for serialization.
// Key is the Address of the Pubkey.
type UserData struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Pubkey   []byte          `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Sequence int64           `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

type userDataView UserData

func (m *userDataView) Reset()         { *m = userDataView{} }
func (m *userDataView) String() string { return proto.CompactTextString(m) }
func (*userDataView) ProtoMessage()    {}

func (m *UserData) Marshal() ([]byte, error) {
	return proto.Marshal((*userDataView)(m))
}

func (m *UserData) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*userDataView)(m))
}

// StdSignature represents the signature, the identity of the signer
// (the Pubkey), and a sequence number to prevent replay attacks.
type StdSignature struct {
	Sequence  int64  `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Pubkey    []byte `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Signature []byte `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
}

type stdSignatureView StdSignature

func (m *stdSignatureView) Reset()         { *m = stdSignatureView{} }
func (m *stdSignatureView) String() string { return proto.CompactTextString(m) }
func (*stdSignatureView) ProtoMessage()    {}

func (m *StdSignature) Marshal() ([]byte, error) {
	return proto.Marshal((*stdSignatureView)(m))
}

func (m *StdSignature) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*stdSignatureView)(m))
}

func (m *StdSignature) GetSequence() int64 {
	if m == nil {
		return 0
	}
	return m.Sequence
}
