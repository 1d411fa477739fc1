// Command wordcount counts how often every space separated word occurs in a text file and prints the table
// holding the counts.
//
// Usage:
//
//	wordcount [flags] <file>
//
// Every flag can be given a default through the environment: WORDCOUNT_CAPACITY, WORDCOUNT_MAX_LOAD,
// WORDCOUNT_HASH, WORDCOUNT_TOP, WORDCOUNT_DELIMITERS and WORDCOUNT_VERBOSE.
package main

import (
	"errors"
	"flag"
	"fmt"
	"github.com/gostonefire/probetable"
	"github.com/gostonefire/probetable/hashfunc"
	"github.com/gostonefire/probetable/internal/conf"
	"github.com/gostonefire/probetable/internal/file"
	"github.com/xyproto/env/v2"
	"io"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("wordcount: ")

	err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("wordcount", flag.ContinueOnError)
	capacity := fs.Int64("capacity", int64(env.Int("WORDCOUNT_CAPACITY", int(conf.DefaultInitialCapacity))), "initial number of buckets")
	maxLoad := fs.Float64("max-load", env.Float64("WORDCOUNT_MAX_LOAD", conf.DefaultMaxLoadFactor), "load factor that triggers a resize, in range (0, 1)")
	hashName := fs.String("hash", env.Str("WORDCOUNT_HASH", "polynomial"), "hash algorithm: polynomial or xxhash")
	top := fs.Int("top", env.Int("WORDCOUNT_TOP", 0), "also print the N most frequent words")
	delimiters := fs.String("delimiters", env.Str("WORDCOUNT_DELIMITERS", " "), "characters separating words")
	verbose := fs.Bool("verbose", env.Bool("WORDCOUNT_VERBOSE"), "log table statistics")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("please provide filename")
	}
	fileName := fs.Arg(0)

	var hashAlgorithm hashfunc.HashAlgorithm
	switch *hashName {
	case "polynomial":
	case "xxhash":
		hashAlgorithm = hashfunc.NewXXHashAlgorithm(*capacity)
	default:
		return fmt.Errorf("unknown hash algorithm %q", *hashName)
	}

	table, _, err := probetable.NewTableWithConf(probetable.TableConf{
		InitialCapacity: *capacity,
		MaxLoadFactor:   *maxLoad,
		HashAlgorithm:   hashAlgorithm,
	})
	if err != nil {
		return fmt.Errorf("error while creating table: %w", err)
	}
	defer table.Destroy()

	words, err := file.ReadWordsFromFile(fileName, *delimiters, table.Insert)
	if err != nil {
		return err
	}

	if *verbose {
		stat, err := table.GetTableStat()
		if err != nil {
			return err
		}
		log.Printf("read %d words from %s", words, fileName)
		log.Printf("%d distinct words in %d buckets, load %.2f, max probe distance %d",
			stat.Filled, stat.Size, stat.LoadFactor, stat.MaxProbeDistance)
		log.Printf("probe distance distribution: %v", stat.ProbeDistribution)
	}

	_, err = io.WriteString(stdout, table.Report())
	if err != nil {
		return err
	}

	if *top > 0 {
		entries, err := table.TopEntries(*top)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(stdout, "Top %d:\n", len(entries))
		for i, entry := range entries {
			_, _ = fmt.Fprintf(stdout, "%3d. %s %d\n", i+1, entry.Key, entry.Count)
		}
	}

	return nil
}
