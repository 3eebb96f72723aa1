package yield

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/yieldweave"
)

type Status int32

const (
	StatusInvalid   Status = 0
	StatusActive    Status = 1
	StatusExpired   Status = 2
	StatusCompleted Status = 3
)

var Status_name = map[int32]string{
	0: "STATUS_INVALID",
	1: "STATUS_ACTIVE",
	2: "STATUS_EXPIRED",
	3: "STATUS_COMPLETED",
}

var Status_value = map[string]int32{
	"STATUS_INVALID":   0,
	"STATUS_ACTIVE":    1,
	"STATUS_EXPIRED":   2,
	"STATUS_COMPLETED": 3,
}

func (x Status) String() string {
	return proto.EnumName(Status_name, int32(x))
}

func init() {
	proto.RegisterEnum("yield.Status", Status_name, Status_value)
}

// Configuration is the single administrator and the global settings of the
// extension.
type Configuration struct {
	Metadata        *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Admin           weave.Address   `protobuf:"bytes,2,opt,name=admin,proto3,casttype=github.com/iov-one/yieldweave.Address" json:"admin,omitempty"`
	Percentage      int32           `protobuf:"varint,3,opt,name=percentage,proto3" json:"percentage,omitempty"`
	SettlementToken weave.Address   `protobuf:"bytes,4,opt,name=settlement_token,json=settlementToken,proto3,casttype=github.com/iov-one/yieldweave.Address" json:"settlement_token,omitempty"`
}

type configurationView Configuration

func (m *configurationView) Reset()         { *m = configurationView{} }
func (m *configurationView) String() string { return proto.CompactTextString(m) }
func (*configurationView) ProtoMessage()    {}

func (m *Configuration) Marshal() ([]byte, error) {
	return proto.Marshal((*configurationView)(m))
}

func (m *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*configurationView)(m))
}

// Strategy is the deposit of a single owner.
type Strategy struct {
	Metadata        *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner           weave.Address   `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/yieldweave.Address" json:"owner,omitempty"`
	PrincipalAmount weave.Amount    `protobuf:"bytes,3,opt,name=principal_amount,json=principalAmount,proto3,casttype=github.com/iov-one/yieldweave.Amount" json:"principal_amount,omitempty"`
	Percentage      int32           `protobuf:"varint,4,opt,name=percentage,proto3" json:"percentage,omitempty"`
	SettlementToken weave.Address   `protobuf:"bytes,5,opt,name=settlement_token,json=settlementToken,proto3,casttype=github.com/iov-one/yieldweave.Address" json:"settlement_token,omitempty"`
	CreatedAt       weave.UnixTime  `protobuf:"varint,6,opt,name=created_at,json=createdAt,proto3,casttype=github.com/iov-one/yieldweave.UnixTime" json:"created_at,omitempty"`
	MaturesAt       weave.UnixTime  `protobuf:"varint,7,opt,name=matures_at,json=maturesAt,proto3,casttype=github.com/iov-one/yieldweave.UnixTime" json:"matures_at,omitempty"`
	Status          Status          `protobuf:"varint,8,opt,name=status,proto3,enum=yield.Status" json:"status,omitempty"`
}

type strategyView Strategy

func (m *strategyView) Reset()         { *m = strategyView{} }
func (m *strategyView) String() string { return proto.CompactTextString(m) }
func (*strategyView) ProtoMessage()    {}

func (m *Strategy) Marshal() ([]byte, error) {
	return proto.Marshal((*strategyView)(m))
}

func (m *Strategy) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*strategyView)(m))
}

// InitializeMsg stores the administrator. It must be signed by the new
// administrator.
type InitializeMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Admin    weave.Address   `protobuf:"bytes,2,opt,name=admin,proto3,casttype=github.com/iov-one/yieldweave.Address" json:"admin,omitempty"`
}

type initializeMsgView InitializeMsg

func (m *initializeMsgView) Reset()         { *m = initializeMsgView{} }
func (m *initializeMsgView) String() string { return proto.CompactTextString(m) }
func (*initializeMsgView) ProtoMessage()    {}

func (m *InitializeMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*initializeMsgView)(m))
}

func (m *InitializeMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*initializeMsgView)(m))
}

type SetPercentageMsg struct {
	Metadata   *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Percentage int32           `protobuf:"varint,2,opt,name=percentage,proto3" json:"percentage,omitempty"`
}

type setPercentageMsgView SetPercentageMsg

func (m *setPercentageMsgView) Reset()         { *m = setPercentageMsgView{} }
func (m *setPercentageMsgView) String() string { return proto.CompactTextString(m) }
func (*setPercentageMsgView) ProtoMessage()    {}

func (m *SetPercentageMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*setPercentageMsgView)(m))
}

func (m *SetPercentageMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*setPercentageMsgView)(m))
}

type SetTokenMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Token    weave.Address   `protobuf:"bytes,2,opt,name=token,proto3,casttype=github.com/iov-one/yieldweave.Address" json:"token,omitempty"`
}

type setTokenMsgView SetTokenMsg

func (m *setTokenMsgView) Reset()         { *m = setTokenMsgView{} }
func (m *setTokenMsgView) String() string { return proto.CompactTextString(m) }
func (*setTokenMsgView) ProtoMessage()    {}

func (m *SetTokenMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*setTokenMsgView)(m))
}

func (m *SetTokenMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*setTokenMsgView)(m))
}

type OpenStrategyMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    weave.Address   `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/yieldweave.Address" json:"owner,omitempty"`
	Amount   weave.Amount    `protobuf:"bytes,3,opt,name=amount,proto3,casttype=github.com/iov-one/yieldweave.Amount" json:"amount,omitempty"`
}

type openStrategyMsgView OpenStrategyMsg

func (m *openStrategyMsgView) Reset()         { *m = openStrategyMsgView{} }
func (m *openStrategyMsgView) String() string { return proto.CompactTextString(m) }
func (*openStrategyMsgView) ProtoMessage()    {}

func (m *OpenStrategyMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*openStrategyMsgView)(m))
}

func (m *OpenStrategyMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*openStrategyMsgView)(m))
}

// AccrueMsg mints the given amount of the strategy's settlement token to the
// owner.
type AccrueMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    weave.Address   `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/yieldweave.Address" json:"owner,omitempty"`
	Amount   weave.Amount    `protobuf:"bytes,3,opt,name=amount,proto3,casttype=github.com/iov-one/yieldweave.Amount" json:"amount,omitempty"`
}

type accrueMsgView AccrueMsg

func (m *accrueMsgView) Reset()         { *m = accrueMsgView{} }
func (m *accrueMsgView) String() string { return proto.CompactTextString(m) }
func (*accrueMsgView) ProtoMessage()    {}

func (m *AccrueMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*accrueMsgView)(m))
}

func (m *AccrueMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*accrueMsgView)(m))
}

type ExpireStrategyMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    weave.Address   `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/yieldweave.Address" json:"owner,omitempty"`
}

type expireStrategyMsgView ExpireStrategyMsg

func (m *expireStrategyMsgView) Reset()         { *m = expireStrategyMsgView{} }
func (m *expireStrategyMsgView) String() string { return proto.CompactTextString(m) }
func (*expireStrategyMsgView) ProtoMessage()    {}

func (m *ExpireStrategyMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*expireStrategyMsgView)(m))
}

func (m *ExpireStrategyMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*expireStrategyMsgView)(m))
}

type CompleteStrategyMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    weave.Address   `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/yieldweave.Address" json:"owner,omitempty"`
}

type completeStrategyMsgView CompleteStrategyMsg

func (m *completeStrategyMsgView) Reset()         { *m = completeStrategyMsgView{} }
func (m *completeStrategyMsgView) String() string { return proto.CompactTextString(m) }
func (*completeStrategyMsgView) ProtoMessage()    {}

func (m *CompleteStrategyMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*completeStrategyMsgView)(m))
}

func (m *CompleteStrategyMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*completeStrategyMsgView)(m))
}

// WithdrawMsg burns the given amount of the settlement token from the owner
// of a completed strategy.
type WithdrawMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    weave.Address   `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/yieldweave.Address" json:"owner,omitempty"`
	Amount   weave.Amount    `protobuf:"bytes,3,opt,name=amount,proto3,casttype=github.com/iov-one/yieldweave.Amount" json:"amount,omitempty"`
}

type withdrawMsgView WithdrawMsg

func (m *withdrawMsgView) Reset()         { *m = withdrawMsgView{} }
func (m *withdrawMsgView) String() string { return proto.CompactTextString(m) }
func (*withdrawMsgView) ProtoMessage()    {}

func (m *WithdrawMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*withdrawMsgView)(m))
}

func (m *WithdrawMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*withdrawMsgView)(m))
}
