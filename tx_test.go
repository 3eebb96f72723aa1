package weave_test

import (
	"testing"

	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/errors"
	"github.com/iov-one/yieldweave/weavetest"
	"github.com/iov-one/yieldweave/weavetest/assert"
)

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      weave.Tx
		dest    interface{}
		wantErr *errors.Error
	}{
		"message is loaded": {
			tx:   &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "a/b", Serialized: []byte("x")}},
			dest: &weavetest.Msg{},
		},
		"invalid message is rejected": {
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "a/b", Err: errors.ErrMsg}},
			dest:    &weavetest.Msg{},
			wantErr: errors.ErrMsg,
		},
		"missing message": {
			tx:      &weavetest.Tx{},
			dest:    &weavetest.Msg{},
			wantErr: errors.ErrState,
		},
		"destination must be a pointer": {
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "a/b"}},
			dest:    weavetest.Msg{},
			wantErr: errors.ErrType,
		},
		"destination of a different type": {
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "a/b"}},
			dest:    &weave.Metadata{},
			wantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := weave.LoadMsg(tc.tx, tc.dest)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if err == nil {
				assert.Equal(t, tc.tx.(*weavetest.Tx).Msg, tc.dest)
			}
		})
	}
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "(missing)", weave.GetPath(&weavetest.Tx{}))
	assert.Equal(t, "yield/accrue", weave.GetPath(&weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "yield/accrue"}}))
}

func TestMetadata(t *testing.T) {
	var nilMeta *weave.Metadata
	assert.IsErr(t, errors.ErrMetadata, nilMeta.Validate())
	assert.IsErr(t, errors.ErrMetadata, (&weave.Metadata{}).Validate())
	assert.Nil(t, (&weave.Metadata{Schema: 1}).Validate())

	raw, err := (&weave.Metadata{Schema: 7}).Marshal()
	assert.Nil(t, err)
	var got weave.Metadata
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, int32(7), got.Schema)
}
