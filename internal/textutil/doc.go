// Package textutil provides text handling shared by the drafts store, the
// Threads client and the command tables.
//
// Post bodies are measured after NFC normalization so a composed "é" and a
// decomposed "e + U+0301" count the same toward the 500 character limit.
package textutil
