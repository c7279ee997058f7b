// Command jcs writes the RFC 8785 canonical form of JSON documents, or their
// SHA-256 digests, to standard output.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/minio/sha256-simd"
	"github.com/pkg/profile"

	"jcs.mleku.dev"
	"jcs.mleku.dev/config"
	"jcs.mleku.dev/errorf"
	"jcs.mleku.dev/hex"
	"jcs.mleku.dev/lol"
	"jcs.mleku.dev/units"
)

type cliArgs struct {
	Files  []string `arg:"positional" help:"JSON files to canonicalize, standard input if none are given"`
	Digest bool     `arg:"-d" help:"print the SHA-256 of the canonical form (overrides JCS_DIGEST)"`
}

func (cliArgs) Version() string { return "jcs " + jcs.Version }

var args cliArgs

func main() {
	var err error
	var cfg *config.C
	if cfg, err = config.New(); chk.T(err) {
		_, _ = fmt.Fprintf(os.Stderr, "ERROR: %s\n\n", err)
		config.PrintHelp(cfg, os.Stderr)
		os.Exit(1)
	}
	if config.GetEnv() {
		config.PrintEnv(cfg, os.Stdout)
		os.Exit(0)
	}
	if config.HelpRequested() {
		config.PrintHelp(cfg, os.Stderr)
		os.Exit(0)
	}
	arg.MustParse(&args)
	lol.SetLogLevel(cfg.LogLevel)
	if cfg.Pprof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	if args.Digest {
		cfg.Digest = true
	}
	if err = run(cfg, args.Files, os.Stdin, os.Stdout); chk.E(err) {
		os.Exit(1)
	}
}

// run canonicalizes each file in turn, or in if there are none, and writes
// the results to out.
func run(cfg *config.C, files []string, in io.Reader, out io.Writer) (err error) {
	limit := int64(cfg.MaxInput) * units.Mb
	if limit <= 0 {
		limit = 64 * units.Mb
	}
	if len(files) == 0 {
		var b []byte
		if b, err = read("stdin", in, limit); err != nil {
			return
		}
		return emit(cfg, "stdin", b, out)
	}
	for _, name := range files {
		var f *os.File
		if f, err = os.Open(name); chk.E(err) {
			return
		}
		var b []byte
		b, err = read(name, f, limit)
		chk.E(f.Close())
		if err != nil {
			return
		}
		if err = emit(cfg, name, b, out); err != nil {
			return
		}
	}
	return
}

// read reads all of r, failing if there is more than limit bytes.
func read(name string, r io.Reader, limit int64) (b []byte, err error) {
	if b, err = io.ReadAll(io.LimitReader(r, limit+1)); chk.E(err) {
		return
	}
	if int64(len(b)) > limit {
		err = errorf.E("%s: larger than %d bytes", name, limit)
		b = nil
	}
	return
}

func emit(cfg *config.C, name string, data []byte, out io.Writer) (err error) {
	var b []byte
	if b, err = jcs.Transform(data); err != nil {
		err = errorf.E("%s: %w", name, err)
		return
	}
	log.D.F("%s: %d bytes canonical", name, len(b))
	if cfg.Digest {
		sum := sha256.Sum256(b)
		b = hex.EncAppend(nil, sum[:])
	}
	if cfg.Newline {
		b = append(b, '\n')
	}
	_, err = out.Write(b)
	return
}
