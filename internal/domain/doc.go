// Package domain defines the core business entities of the ledger:
// users, accounts and transactions, together with their validation
// rules and the balance transition applied when a transaction is
// recorded.
package domain
