package errors

import (
	"testing"
)

func TestAppend(t *testing.T) {
	cases := map[string]struct {
		errs     []error
		wantNil  bool
		wantCode uint32
		wantLen  int
	}{
		"no errors": {
			errs:    nil,
			wantNil: true,
		},
		"only nil errors": {
			errs:    []error{nil, nil},
			wantNil: true,
		},
		"single error is returned as it is": {
			errs:     []error{nil, ErrEmpty, nil},
			wantCode: ErrEmpty.ABCICode(),
			wantLen:  1,
		},
		"first error code wins": {
			errs:     []error{ErrAmount, Wrap(ErrEmpty, "name")},
			wantCode: ErrAmount.ABCICode(),
			wantLen:  2,
		},
		"multi errors are flattened": {
			errs:     []error{Append(ErrAmount, ErrEmpty), ErrState},
			wantCode: ErrAmount.ABCICode(),
			wantLen:  3,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := Append(tc.errs...)
			if tc.wantNil {
				if err != nil {
					t.Fatalf("want nil, got %+v", err)
				}
				return
			}
			if got := abciCode(err); got != tc.wantCode {
				t.Fatalf("want %d code, got %d", tc.wantCode, got)
			}
			n := 1
			if u, ok := err.(unpacker); ok {
				n = len(u.Unpack())
			}
			if n != tc.wantLen {
				t.Fatalf("want %d errors, got %d", tc.wantLen, n)
			}
		})
	}
}

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"nil is success": {
			err:      nil,
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"coded error is exposed": {
			err:      Wrap(ErrNotFound, "strategy"),
			wantCode: ErrNotFound.ABCICode(),
			wantLog:  "strategy: not found",
		},
		"non coded error is redacted": {
			err:      Wrap(errorString("database exploded"), "save"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

type errorString string

func (e errorString) Error() string { return string(e) }
