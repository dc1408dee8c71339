package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/rawbytedev/pinned"
	"github.com/rawbytedev/pinned/symtab"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	// decoder-shaped workload: intern a rotating vocabulary while pushing
	// records that point back at earlier ones, then fill a fixed table in
	// reverse order
	type record struct {
		name symtab.Symbol
		prev *record
	}
	names := symtab.New()
	seq := pinned.NewSeq[record]()
	for i := 0; i < 100000; i++ {
		sym := names.Intern("field-" + strconv.Itoa(i%512))
		var prev *record
		if i > 0 {
			prev, _ = seq.Get(i - 1)
		}
		seq.Push(record{name: sym, prev: prev})
	}

	const tableSize = 10000
	table := pinned.NewOnceArray[string](tableSize)
	for i := tableSize - 1; i >= 0; i-- {
		if err := table.Set(i, "record-"+strconv.Itoa(i)); err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("seq=%d symbols=%d filled=%d", seq.Len(), names.Len(), table.Filled())

	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
