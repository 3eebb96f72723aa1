package weave

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/yieldweave/errors"
)

// Metadata is carried by every persisted model and message. It declares the
// schema version the entity was serialized with.
type Metadata struct {
	Schema int32 `protobuf:"varint,1,opt,name=schema,proto3" json:"schema,omitempty"`
}

// Validate returns an error if the metadata does not declare a schema.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrMetadata, "nil")
	}
	if m.Schema < 1 {
		return errors.Wrap(errors.ErrMetadata, "schema version must be greater than zero")
	}
	return nil
}

// metadataView is used by the protobuf codec. It carries the same fields
// without the Marshal method so that proto does not call back into it.
type metadataView Metadata

func (m *metadataView) Reset()         { *m = metadataView{} }
func (m *metadataView) String() string { return proto.CompactTextString(m) }
func (*metadataView) ProtoMessage()    {}

func (m *Metadata) Marshal() ([]byte, error) {
	return proto.Marshal((*metadataView)(m))
}

func (m *Metadata) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*metadataView)(m))
}
