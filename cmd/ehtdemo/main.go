// Command ehtdemo exercises the elastic hash table end to end: basic
// insert/get/delete, a forced grow-rebuild by exceeding the load factor,
// and a forced compaction-rebuild by deleting enough entries to pass the
// tombstone ratio and then inserting fresh ones.
package main

import (
	"fmt"

	"eht"
)

func main() {
	fmt.Println("Elastic Hash Table demo")

	t := eht.New(64)
	fmt.Printf("created table: capacity=%d levels=%d\n", t.Capacity(), t.NumLevels())

	must(t.Insert([]byte("alpha"), []byte("1")))
	must(t.Insert([]byte("beta"), []byte("22")))
	must(t.Insert([]byte("gamma"), []byte("333")))

	fmt.Printf("len=%d\n", t.Len())
	if v, ok := t.Get([]byte("beta")); ok {
		fmt.Printf("beta=%s\n", v)
	}

	fmt.Println("\nkeys via iterator:")
	it := t.Iterator()
	for it.Next() {
		fmt.Printf("  %s = %s\n", it.Key(), it.Value())
	}

	t.Delete([]byte("alpha"))
	fmt.Printf("after delete(alpha): contains=%t len=%d\n", t.Contains([]byte("alpha")), t.Len())

	fmt.Println("\nforcing a grow-rebuild by exceeding max load...")
	before := t.Capacity()
	for i := 0; i < 1000; i++ {
		key := []byte(fmt.Sprintf("grow-key-%d", i))
		must(t.Insert(key, key))
	}
	fmt.Printf("capacity grew from %d to %d, len=%d\n", before, t.Capacity(), t.Len())

	fmt.Println("\nforcing a compaction-rebuild via tombstone ratio...")
	deleted := 0
	for i := 0; i < 400; i++ {
		key := []byte(fmt.Sprintf("grow-key-%d", i))
		if t.Delete(key) {
			deleted++
		}
	}
	beforeCompact := t.Capacity()
	for i := 1000; i < 1400; i++ {
		key := []byte(fmt.Sprintf("fresh-key-%d", i))
		must(t.Insert(key, key))
	}
	stats := t.Stats()
	fmt.Printf("deleted %d entries; capacity before=%d after=%d; tombstone ratio=%.3f\n",
		deleted, beforeCompact, t.Capacity(), stats.TombstoneRatio)

	fmt.Println("\nlevel stats:")
	for _, ls := range t.LevelStats(0) {
		fmt.Printf("  level %d: capacity=%d count=%d tombstones=%d\n", ls.Index, ls.Capacity, ls.Count, ls.Tombstones)
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
