// Package signal generates the time axes a color signal is sampled on.
package signal
