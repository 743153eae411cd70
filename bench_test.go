package hashtable_test

import (
	"fmt"
	"testing"

	hashtable "github.com/Timothy-itayi/go-hashtable"
)

func benchKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%08d", i)
	}
	return keys
}

// BenchmarkInsert measures insertion cost, including the inline resizes
// that growth triggers, for each hash family.
func BenchmarkInsert(b *testing.B) {
	for name, h := range map[string]hashtable.Hasher{
		"poly":   hashtable.PolyHasher{},
		"xxhash": hashtable.XXHasher{},
	} {
		b.Run(name, func(b *testing.B) {
			keys := benchKeys(b.N)
			tbl, err := hashtable.New(hashtable.WithHasher(h))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := tbl.Insert(keys[i], "value"); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSearchHit measures lookups of keys that are present in a table
// of 100k entries.
func BenchmarkSearchHit(b *testing.B) {
	const n = 100_000
	keys := benchKeys(n)
	tbl, err := hashtable.New()
	if err != nil {
		b.Fatal(err)
	}
	for _, k := range keys {
		if err := tbl.Insert(k, "value"); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found := tbl.Search(keys[i%n]); !found {
			b.Fatal("key unexpectedly missing")
		}
	}
}

// BenchmarkSearchMiss measures lookups of keys that were never inserted,
// which walk to the first empty slot.
func BenchmarkSearchMiss(b *testing.B) {
	const n = 100_000
	tbl, err := hashtable.New()
	if err != nil {
		b.Fatal(err)
	}
	for _, k := range benchKeys(n) {
		if err := tbl.Insert(k, "value"); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found := tbl.Search(fmt.Sprintf("missing-%08d", i)); found {
			b.Fatal("unexpected hit")
		}
	}
}

// BenchmarkDeleteInsert measures a delete immediately followed by a
// reinsert of the same key, the pattern that exercises tombstone reuse.
func BenchmarkDeleteInsert(b *testing.B) {
	const n = 10_000
	keys := benchKeys(n)
	tbl, err := hashtable.New()
	if err != nil {
		b.Fatal(err)
	}
	for _, k := range keys {
		if err := tbl.Insert(k, "value"); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := keys[i%n]
		tbl.Delete(k)
		if err := tbl.Insert(k, "value"); err != nil {
			b.Fatal(err)
		}
	}
}
