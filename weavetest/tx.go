package weavetest

import weave "github.com/iov-one/yieldweave"

// Tx is a weave.Tx carrying a single message. Marshaling returns the
// serialized message.
type Tx struct {
	Msg weave.Msg
	// Err if set is returned by GetMsg.
	Err error
}

var _ weave.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (weave.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Msg == nil {
		return nil, tx.Err
	}
	return tx.Msg.Marshal()
}

func (tx *Tx) Unmarshal([]byte) error {
	panic("a test transaction cannot be decoded")
}

// Msg is a weave.Msg routed by RoutePath. Err if set is returned by
// Validate, Marshal and Unmarshal.
type Msg struct {
	RoutePath  string
	Serialized []byte
	Err        error
}

var _ weave.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}

func (m *Msg) Unmarshal(raw []byte) error {
	m.Serialized = raw
	return m.Err
}
