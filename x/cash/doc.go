/*
Package cash implements a multi token fungible ledger. Every balance is
identified by the token address and the owner address. Tokens can be minted
and burned by other extensions through the Controller and moved between
owners with a SendMsg signed by the sender.
*/
package cash
