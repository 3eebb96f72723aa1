package x

import (
	"context"
	"testing"

	weave "github.com/iov-one/yieldweave"
	"github.com/iov-one/yieldweave/weavetest"
	"github.com/iov-one/yieldweave/weavetest/assert"
)

func TestAuthenticators(t *testing.T) {
	admin := weavetest.NewCondition()
	owner := weavetest.NewCondition()
	stranger := weavetest.NewCondition()

	signed := &weavetest.CtxAuth{Key: "signed"}
	other := &weavetest.CtxAuth{Key: "other"}

	cases := map[string]struct {
		ctx      weave.Context
		auth     Authenticator
		wantMain weave.Condition
		wantAll  []weave.Condition
		wantIn   []weave.Condition
		wantOut  []weave.Condition
	}{
		"nothing signed": {
			ctx:     context.Background(),
			auth:    &weavetest.Auth{},
			wantOut: []weave.Condition{admin, owner},
		},
		"static signer": {
			ctx:      context.Background(),
			auth:     &weavetest.Auth{Signer: admin},
			wantMain: admin,
			wantAll:  []weave.Condition{admin},
			wantIn:   []weave.Condition{admin},
			wantOut:  []weave.Condition{owner},
		},
		"chain keeps the authenticator order": {
			ctx: context.Background(),
			auth: ChainAuth(
				&weavetest.Auth{Signer: owner},
				&weavetest.Auth{Signer: admin}),
			wantMain: owner,
			wantAll:  []weave.Condition{owner, admin},
			wantIn:   []weave.Condition{owner, admin},
			wantOut:  []weave.Condition{stranger},
		},
		"context signers": {
			ctx:      signed.SetConditions(context.Background(), owner, admin),
			auth:     signed,
			wantMain: owner,
			wantAll:  []weave.Condition{owner, admin},
			wantIn:   []weave.Condition{admin},
			wantOut:  []weave.Condition{stranger},
		},
		"context signers under another key are invisible": {
			ctx:     signed.SetConditions(context.Background(), owner),
			auth:    other,
			wantOut: []weave.Condition{owner},
		},
		"chain of context and static authenticators": {
			ctx:      signed.SetConditions(context.Background(), stranger),
			auth:     ChainAuth(signed, &weavetest.Auth{Signer: admin}),
			wantMain: stranger,
			wantAll:  []weave.Condition{stranger, admin},
			wantIn:   []weave.Condition{stranger, admin},
			wantOut:  []weave.Condition{owner},
		},
		"empty chain": {
			ctx:     context.Background(),
			auth:    ChainAuth(),
			wantOut: []weave.Condition{admin},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantMain, MainSigner(tc.ctx, tc.auth))
			assert.Equal(t, tc.wantAll, tc.auth.GetConditions(tc.ctx))
			for _, c := range tc.wantIn {
				if !tc.auth.HasAddress(tc.ctx, c.Address()) {
					t.Errorf("%s not authenticated", c)
				}
			}
			for _, c := range tc.wantOut {
				if tc.auth.HasAddress(tc.ctx, c.Address()) {
					t.Errorf("%s unexpectedly authenticated", c)
				}
			}
		})
	}
}

func TestConditionsHaveAddress(t *testing.T) {
	a := weavetest.NewCondition()
	b := weavetest.NewCondition()

	assert.Equal(t, false, ConditionsHaveAddress(nil, a.Address()))
	assert.Equal(t, true, ConditionsHaveAddress([]weave.Condition{b, a}, a.Address()))
	assert.Equal(t, false, ConditionsHaveAddress([]weave.Condition{b}, a.Address()))
}
