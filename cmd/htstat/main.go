// Command htstat loads keys into a hash table and reports how they spread over its slots.
//
//	htstat --file words.txt --hash xxhash --distribution
//	htstat --generate 100000 --capacity 1024
package main

import (
	"fmt"
	"github.com/gostonefire/hashtable"
	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"
	"os"
)

var log = logging.MustGetLogger("htstat")

var stderrLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

// Options - Command line options
type Options struct {
	File            string `short:"f" long:"file" description:"read keys from this file, one per line"`
	Generate        int    `short:"n" long:"generate" description:"generate this many random UUID keys"`
	InitialCapacity int64  `short:"c" long:"capacity" default:"16" description:"initial number of slots"`
	GrowthFactor    int64  `short:"g" long:"growth" default:"2" description:"factor the capacity grows by"`
	Hash            string `long:"hash" default:"fnv1a" choice:"fnv1a" choice:"xxhash" description:"hash algorithm"`
	Distribution    bool   `short:"d" long:"distribution" description:"also print the probe distance distribution"`
	LogLevel        string `short:"l" long:"loglevel" default:"info" description:"set the logging level [debug, info, notice, warning, error, critical]"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := setupLogging(opts.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// setupLogging - Sends log output to stderr at the given level
func setupLogging(level string) error {
	logLevel, err := logging.LogLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, stderrLogFormat))
	leveled.SetLevel(logLevel, "")
	logging.SetBackend(leveled)

	return nil
}

// run - Builds the table described by opts, fills it and prints the report to stdout
func run(opts Options) error {
	conf := hashtable.Conf{
		InitialCapacity: opts.InitialCapacity,
		GrowthFactor:    opts.GrowthFactor,
	}
	if opts.Hash == "xxhash" {
		conf.HashAlgorithm = hashtable.NewXXHashAlgorithm()
	}

	keys, err := collectKeys(opts)
	if err != nil {
		return err
	}
	log.Infof("loaded %d keys", len(keys))

	table, err := hashtable.NewWithConf[int](conf)
	if err != nil {
		return fmt.Errorf("unable to create table: %w", err)
	}
	defer table.Destroy()

	if err = fill(table, keys); err != nil {
		return err
	}

	return renderStat(os.Stdout, opts.Hash, table.Stat(opts.Distribution))
}

// collectKeys - Returns the keys from the file and the generated ones, in that order
func collectKeys(opts Options) (keys []string, err error) {
	if opts.File == "" && opts.Generate <= 0 {
		err = fmt.Errorf("nothing to load, give --file and/or --generate")
		return
	}

	if opts.File != "" {
		var f *os.File
		f, err = os.Open(opts.File)
		if err != nil {
			err = fmt.Errorf("unable to open key file: %w", err)
			return
		}
		defer func(f *os.File) { _ = f.Close() }(f)

		keys, err = readKeys(f)
		if err != nil {
			err = fmt.Errorf("unable to read key file %s: %w", opts.File, err)
			return
		}
		log.Debugf("read %d keys from %s", len(keys), opts.File)
	}

	keys = append(keys, generateKeys(opts.Generate)...)

	return
}

// fill - Sets every key with its position as value, logging each time the table grows
func fill(table *hashtable.Table[int], keys []string) error {
	capacity := table.Cap()
	for i, key := range keys {
		if _, err := table.Set(key, i); err != nil {
			return fmt.Errorf("unable to set key #%d: %w", i, err)
		}
		if table.Cap() != capacity {
			log.Debugf("grew from %d to %d slots at %d keys", capacity, table.Cap(), table.Len())
			capacity = table.Cap()
		}
	}
	if dups := int64(len(keys)) - table.Len(); dups > 0 {
		log.Noticef("%d duplicate keys were updated in place", dups)
	}

	return nil
}
