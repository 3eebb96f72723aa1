/*
Package yield implements a per owner yield accrual ledger.

An administrator opens a strategy for an owner, recording the deposited
principal together with a snapshot of the global yield percentage and the
settlement token. The strategy goes through the Active, Expired and Completed
states. Yield is minted to the owner on accrual and on expiration, and once
the strategy is completed a withdrawal burns tokens back.

Every mutation requires the signature of the single administrator stored in
the extension configuration. Tokens are settled through a TokenLedger, for
example the cash extension controller.
*/
package yield
