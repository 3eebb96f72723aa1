package cash

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/yieldweave"
)

// Balance is the amount of a single token held by an owner.
type Balance struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Token    weave.Address   `protobuf:"bytes,2,opt,name=token,proto3,casttype=github.com/iov-one/yieldweave.Address" json:"token,omitempty"`
	Owner    weave.Address   `protobuf:"bytes,3,opt,name=owner,proto3,casttype=github.com/iov-one/yieldweave.Address" json:"owner,omitempty"`
	Amount   weave.Amount    `protobuf:"bytes,4,opt,name=amount,proto3,casttype=github.com/iov-one/yieldweave.Amount" json:"amount,omitempty"`
}

type balanceView Balance

func (m *balanceView) Reset()         { *m = balanceView{} }
func (m *balanceView) String() string { return proto.CompactTextString(m) }
func (*balanceView) ProtoMessage()    {}

func (m *Balance) Marshal() ([]byte, error) {
	return proto.Marshal((*balanceView)(m))
}

func (m *Balance) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*balanceView)(m))
}

// SendMsg moves tokens between two owners.
type SendMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Token    weave.Address   `protobuf:"bytes,2,opt,name=token,proto3,casttype=github.com/iov-one/yieldweave.Address" json:"token,omitempty"`
	Src      weave.Address   `protobuf:"bytes,3,opt,name=src,proto3,casttype=github.com/iov-one/yieldweave.Address" json:"src,omitempty"`
	Dest     weave.Address   `protobuf:"bytes,4,opt,name=dest,proto3,casttype=github.com/iov-one/yieldweave.Address" json:"dest,omitempty"`
	Amount   weave.Amount    `protobuf:"bytes,5,opt,name=amount,proto3,casttype=github.com/iov-one/yieldweave.Amount" json:"amount,omitempty"`
	Memo     string          `protobuf:"bytes,6,opt,name=memo,proto3" json:"memo,omitempty"`
}

type sendMsgView SendMsg

func (m *sendMsgView) Reset()         { *m = sendMsgView{} }
func (m *sendMsgView) String() string { return proto.CompactTextString(m) }
func (*sendMsgView) ProtoMessage()    {}

func (m *SendMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*sendMsgView)(m))
}

func (m *SendMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*sendMsgView)(m))
}
