// ## Overview
// Package strtrie implements a prefix trie keyed by strings of Unicode scalar values (runes).
// The trie is a set: it supports inserting a string and testing membership of a string.
// Every node except the root carries one rune and a map from rune to child node, and is
// either Terminal (the runes on its path from the root spell an inserted string) or
// Internal (the path is only a proper prefix of inserted strings).
//
// Inserting a shorter prefix of an existing path promotes the Internal node at its end to
// Terminal without touching the nodes below it. A node is never demoted.
//
// ## Example usage:
//
//	t := strtrie.New()
//	t.Insert("boot")
//	fmt.Println(t.Contains("boo"))  // Output: false
//	t.Insert("boo")
//	fmt.Println(t.Contains("boo"))  // Output: true
//	fmt.Println(t.Contains("boot")) // Output: true
//
// The empty string is never a member: Insert("") is a no-op and Contains("") is false.
// There is no deletion and no ordered iteration of the members.
package strtrie
