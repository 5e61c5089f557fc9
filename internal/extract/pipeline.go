package extract

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KaramelBytes/imaris-cli/internal/parser"
	"github.com/KaramelBytes/imaris-cli/internal/sample"
)

// Options configures a batch extraction.
type Options struct {
	InputDir   string
	Extensions []string
	Variables  []string
	// Read loads a raw cell grid; defaults to parser.ReadFile.
	Read func(path string) ([][]string, error)
	// Logger receives the per-file log lines; defaults to a discarding logger.
	Logger *slog.Logger
	// Console receives the warnings that are echoed to the user; may be nil.
	Console io.Writer
}

// FileError describes why one input file contributed nothing.
type FileError struct {
	File     string
	Identity sample.FileName
	Err      error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.File, e.Identity, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// FileResult is the outcome of processing one file: either records or an error.
type FileResult struct {
	File     string
	Identity sample.FileName
	Records  []Record
	Err      error
}

// Result summarizes a batch run.
type Result struct {
	Acc     *Accumulator
	Files   []FileResult
	Read    int // files that contributed records
	Skipped int // names or versions that did not qualify
	Failed  int // malformed tables and read faults
}

// ListInputs returns the names of files in dir with one of exts, sorted.
func ListInputs(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, want := range exts {
			if ext == strings.ToLower(want) {
				names = append(names, e.Name())
				break
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// ProcessFile reads, normalizes and extracts one file. Any failure is returned
// as a *FileError and the file yields no records.
func ProcessFile(dir, name string, read func(string) ([][]string, error), allowed VariableSet) FileResult {
	res := FileResult{File: name}
	fn, ok := sample.ParseFilename(name)
	res.Identity = fn
	fail := func(err error) FileResult {
		res.Err = &FileError{File: name, Identity: fn, Err: err}
		return res
	}
	if !ok {
		return fail(errors.New("name does not follow the sample naming convention"))
	}
	if !fn.Version.Recognized() {
		return fail(sample.ErrUnrecognizedVersion)
	}
	raw, err := read(filepath.Join(dir, name))
	if err != nil {
		return fail(err)
	}
	tbl, err := Normalize(raw)
	if err != nil {
		return fail(err)
	}
	recs, err := Extract(tbl, fn.Version, fn.Key(), allowed)
	if err != nil {
		return fail(err)
	}
	res.Records = recs
	return res
}

// Run processes every qualifying file of opt.InputDir in name order. Failures
// are contained per file; only an unreadable input directory aborts the run.
func Run(opt Options) (*Result, error) {
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	read := opt.Read
	if read == nil {
		read = parser.ReadFile
	}
	exts := opt.Extensions
	if len(exts) == 0 {
		exts = []string{".xls"}
	}
	vars := opt.Variables
	if len(vars) == 0 {
		vars = DefaultVariables
	}
	allowed := NewVariableSet(vars)

	names, err := ListInputs(opt.InputDir, exts)
	if err != nil {
		return nil, err
	}
	out := &Result{Acc: NewAccumulator()}
	for _, name := range names {
		fn, ok := sample.ParseFilename(name)
		if !ok {
			log.Debug("skipping file: name does not match the naming convention", "file", name)
			out.Skipped++
			continue
		}
		if !fn.Version.Recognized() {
			log.Warn("unrecognized version for file", "file", name, "version", string(fn.Version))
			out.Skipped++
			continue
		}
		log.Info("reading file", "file", name, "group", fn.GroupToken, "sample", fn.SampleNumber,
			"microglia", fn.SubObjectID, "version", string(fn.Version))

		res := ProcessFile(opt.InputDir, name, read, allowed)
		out.Files = append(out.Files, res)
		if res.Err != nil {
			out.Failed++
			if errors.Is(res.Err, ErrMalformedTable) {
				log.Warn("malformed table: first cell is not \"Average\", the file was not correctly exported from IMARIS",
					"file", name, "identity", fn.String())
				warn(opt.Console, "%s is not a valid IMARIS export (missing \"Average\" header): %s", name, fn)
			} else {
				log.Error("error while reading file", "file", name, "identity", fn.String(), "err", res.Err)
				warn(opt.Console, "could not read %s: %v", name, res.Err)
			}
			continue
		}
		out.Read++
		for _, rec := range res.Records {
			if out.Acc.Record(fn.Version, rec.Variable, rec.Key, rec.Reading) {
				log.Warn("duplicate sample key, earlier reading overwritten",
					"file", name, "variable", rec.Variable, "key", rec.Key)
			}
		}
	}
	return out, nil
}

func warn(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "⚠ Warning: "+format+"\n", args...)
}
