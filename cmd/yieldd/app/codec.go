package yieldd

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/yieldweave/x/cash"
	"github.com/iov-one/yieldweave/x/sigs"
	"github.com/iov-one/yieldweave/x/yield"
)

// Tx contains the message and the signatures authorizing it.
type Tx struct {
	Signatures          []*sigs.StdSignature       `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	SendMsg             *cash.SendMsg              `protobuf:"bytes,51,opt,name=send_msg,json=sendMsg,proto3" json:"send_msg,omitempty"`
	InitializeMsg       *yield.InitializeMsg       `protobuf:"bytes,60,opt,name=initialize_msg,json=initializeMsg,proto3" json:"initialize_msg,omitempty"`
	SetPercentageMsg    *yield.SetPercentageMsg    `protobuf:"bytes,61,opt,name=set_percentage_msg,json=setPercentageMsg,proto3" json:"set_percentage_msg,omitempty"`
	SetTokenMsg         *yield.SetTokenMsg         `protobuf:"bytes,62,opt,name=set_token_msg,json=setTokenMsg,proto3" json:"set_token_msg,omitempty"`
	OpenStrategyMsg     *yield.OpenStrategyMsg     `protobuf:"bytes,63,opt,name=open_strategy_msg,json=openStrategyMsg,proto3" json:"open_strategy_msg,omitempty"`
	AccrueMsg           *yield.AccrueMsg           `protobuf:"bytes,64,opt,name=accrue_msg,json=accrueMsg,proto3" json:"accrue_msg,omitempty"`
	ExpireStrategyMsg   *yield.ExpireStrategyMsg   `protobuf:"bytes,65,opt,name=expire_strategy_msg,json=expireStrategyMsg,proto3" json:"expire_strategy_msg,omitempty"`
	CompleteStrategyMsg *yield.CompleteStrategyMsg `protobuf:"bytes,66,opt,name=complete_strategy_msg,json=completeStrategyMsg,proto3" json:"complete_strategy_msg,omitempty"`
	WithdrawMsg         *yield.WithdrawMsg         `protobuf:"bytes,67,opt,name=withdraw_msg,json=withdrawMsg,proto3" json:"withdraw_msg,omitempty"`
}

type txView Tx

func (m *txView) Reset()         { *m = txView{} }
func (m *txView) String() string { return proto.CompactTextString(m) }
func (*txView) ProtoMessage()    {}

func (m *Tx) Marshal() ([]byte, error) {
	return proto.Marshal((*txView)(m))
}

func (m *Tx) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*txView)(m))
}
