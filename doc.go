/*
Package hashtable provides an in-memory string-keyed hash table built on
open addressing with double hashing.

Table is a self-contained associative container for programs that want
explicit control over hashing, collision resolution and resizing instead
of the built-in map type. It keeps its load factor inside a configurable
band by rebuilding into a larger or smaller prime-sized slot array as
entries come and go.

Basic usage:

	import "github.com/Timothy-itayi/go-hashtable"

	t, err := hashtable.New()
	if err != nil {
		log.Fatal(err)
	}

	// Insert data (overwrite-or-add)
	if err := t.Insert("name", "gopher"); err != nil {
		log.Fatal(err)
	}

	// Retrieve data
	if v, ok := t.Search("name"); ok {
		fmt.Println("Value:", v)
	}

	// Remove data
	t.Delete("name")

Features:

  - Open addressing with double hashing for collision resolution
  - Prime capacities, so probe sequences cover the whole slot array
  - Tombstone deletion that preserves probe chains for surviving keys
  - Automatic doubling above a 0.7 load factor and halving below 0.1,
    with a configurable shrink floor
  - Pluggable hash family: a polynomial string hash by default, with an
    xxHash-based alternative

Implementation details:

Each slot is in one of three states: empty, tombstone, or occupied by a
key/value pair. The probe sequence for attempt i is
(h1 + i*(h2+1)) mod capacity, where h1 and h2 come from two independent
hash values of the key; insert, search and delete all walk the same
sequence. A resize rebuilds the table into a fresh slot array and is the
only point at which tombstones are purged.

A Table is not safe for concurrent use.
*/
package hashtable
