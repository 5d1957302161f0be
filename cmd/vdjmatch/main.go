// Command vdjmatch is the CLI entry point: match a single clonotype or a
// whole sample against a VDJdb reference corpus, compute tcrdist between a
// pair of TCRs, or pre-download and cache the reference database.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/antigenomics/vdjmatch-go/internal/cache"
	"github.com/antigenomics/vdjmatch-go/internal/config"
	"github.com/antigenomics/vdjmatch-go/internal/download"
	"github.com/antigenomics/vdjmatch-go/internal/loader"
	"github.com/antigenomics/vdjmatch-go/internal/logging"
	"github.com/antigenomics/vdjmatch-go/internal/match"
	"github.com/antigenomics/vdjmatch-go/internal/sample"
	"github.com/antigenomics/vdjmatch-go/internal/tcrdist"
	"github.com/antigenomics/vdjmatch-go/pkg/tcrmodel"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "match":
		err = runMatch(os.Args[2:])
	case "batch":
		err = runBatch(os.Args[2:])
	case "tcrdist":
		err = runTCRDist(os.Args[2:])
	case "setup":
		err = runSetup(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "vdjmatch: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("usage: vdjmatch <match|batch|tcrdist|setup> [flags]")
	fmt.Println("\nExamples:")
	fmt.Println("  vdjmatch match -cdr3 CASSLGQAYEQYF -v TRBV12-3 -j TRBJ2-7 -db vdjdb.slim.txt")
	fmt.Println("  vdjmatch batch -sample repertoire.txt -db vdjdb.slim.txt -json")
	fmt.Println("  vdjmatch tcrdist -cdr3a-1 CASSF -cdr3b-1 CASSF -cdr3a-2 CASSLF -cdr3b-2 CASSLF")
	fmt.Println("  vdjmatch setup")
}

func resolveDB(dbPath string, useFatDB bool) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return download.NewManager().EnsureDatabase(useFatDB)
}

func runMatch(args []string) error {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	cdr3 := fs.String("cdr3", "", "query CDR3 amino acid sequence")
	v := fs.String("v", "", "query V segment")
	j := fs.String("j", "", "query J segment")
	dbPath := fs.String("db", "", "path to reference corpus (auto-downloads if empty)")
	fatDB := fs.Bool("fat", false, "use the full VDJdb release instead of the slim one")
	configPath := fs.String("config", "", "path to a YAML match config")
	jsonOutput := fs.Bool("json", false, "output hits as JSON")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := logging.NewCLI(*verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if *cdr3 == "" {
		return fmt.Errorf("-cdr3 is required")
	}

	cfg, err := config.LoadMatchConfig(*configPath)
	if err != nil {
		return err
	}

	path, err := resolveDB(*dbPath, *fatDB)
	if err != nil {
		return err
	}

	corpus, err := loadCorpusCached(path)
	if err != nil {
		return err
	}

	query := tcrmodel.NewClonotype(*cdr3, *v, *j, 1, 1.0)
	logger.Info("matching clonotype", zap.String("cdr3", *cdr3), zap.Int("corpus_size", corpus.Len()))

	hits := match.MatchClonotype(query, corpus, cfg)
	return printHits(hits, *jsonOutput)
}

func runBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	samplePath := fs.String("sample", "", "path to a sample file")
	format := fs.String("format", "vdjtools", "sample file format")
	dbPath := fs.String("db", "", "path to reference corpus (auto-downloads if empty)")
	fatDB := fs.Bool("fat", false, "use the full VDJdb release instead of the slim one")
	configPath := fs.String("config", "", "path to a YAML match config")
	workers := fs.Int("workers", 4, "worker pool size")
	jsonOutput := fs.Bool("json", false, "output hits as JSON")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := logging.NewCLI(*verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if *samplePath == "" {
		return fmt.Errorf("-sample is required")
	}

	sampleFormat, err := sample.ParseFormat(*format)
	if err != nil {
		return err
	}
	queries, err := sample.LoadFile(*samplePath, sampleFormat)
	if err != nil {
		return err
	}

	cfg, err := config.LoadMatchConfig(*configPath)
	if err != nil {
		return err
	}

	path, err := resolveDB(*dbPath, *fatDB)
	if err != nil {
		return err
	}
	corpus, err := loadCorpusCached(path)
	if err != nil {
		return err
	}

	logger.Info("batch matching",
		zap.Int("queries", len(queries)),
		zap.Int("corpus_size", corpus.Len()),
		zap.Int("workers", *workers))

	results := match.MatchClonotypes(queries, corpus, cfg, *workers)
	for _, hits := range results {
		if err := printHits(hits, *jsonOutput); err != nil {
			return err
		}
	}
	return nil
}

func runTCRDist(args []string) error {
	fs := flag.NewFlagSet("tcrdist", flag.ExitOnError)
	cdr1a1 := fs.String("cdr1a-1", "", "TCR1 alpha CDR1")
	cdr2a1 := fs.String("cdr2a-1", "", "TCR1 alpha CDR2")
	cdr3a1 := fs.String("cdr3a-1", "", "TCR1 alpha CDR3")
	cdr1b1 := fs.String("cdr1b-1", "", "TCR1 beta CDR1")
	cdr2b1 := fs.String("cdr2b-1", "", "TCR1 beta CDR2")
	cdr3b1 := fs.String("cdr3b-1", "", "TCR1 beta CDR3")
	cdr1a2 := fs.String("cdr1a-2", "", "TCR2 alpha CDR1")
	cdr2a2 := fs.String("cdr2a-2", "", "TCR2 alpha CDR2")
	cdr3a2 := fs.String("cdr3a-2", "", "TCR2 alpha CDR3")
	cdr1b2 := fs.String("cdr1b-2", "", "TCR2 beta CDR1")
	cdr2b2 := fs.String("cdr2b-2", "", "TCR2 beta CDR2")
	cdr3b2 := fs.String("cdr3b-2", "", "TCR2 beta CDR3")
	if err := fs.Parse(args); err != nil {
		return err
	}

	x := tcrmodel.TCR{
		CDR1Alpha: *cdr1a1, CDR2Alpha: *cdr2a1, CDR3Alpha: *cdr3a1,
		CDR1Beta: *cdr1b1, CDR2Beta: *cdr2b1, CDR3Beta: *cdr3b1,
	}
	y := tcrmodel.TCR{
		CDR1Alpha: *cdr1a2, CDR2Alpha: *cdr2a2, CDR3Alpha: *cdr3a2,
		CDR1Beta: *cdr1b2, CDR2Beta: *cdr2b2, CDR3Beta: *cdr3b2,
	}

	fmt.Printf("%.2f\n", tcrdist.TCRDist(x, y))
	return nil
}

func runSetup(args []string) error {
	fs := flag.NewFlagSet("setup", flag.ExitOnError)
	fatDB := fs.Bool("fat", false, "also download the full VDJdb release")
	if err := fs.Parse(args); err != nil {
		return err
	}

	manager := download.NewManager()
	path, err := manager.EnsureDatabase(false)
	if err != nil {
		return err
	}
	fmt.Printf("slim database ready at %s\n", path)

	if *fatDB {
		fatPath, err := manager.EnsureDatabase(true)
		if err != nil {
			return err
		}
		fmt.Printf("fat database ready at %s\n", fatPath)
	}
	return nil
}

// loadCorpusCached loads a reference corpus from path, preferring a valid
// gob binary cache over re-parsing the TSV.
func loadCorpusCached(path string) (tcrmodel.ReferenceCorpus, error) {
	cachePath := cache.BinaryCachePath(path)
	if cache.IsBinaryCacheValid(path, cachePath) {
		if corpus, err := cache.LoadBinaryCache(cachePath); err == nil {
			return corpus, nil
		}
	}

	corpus, err := loader.LoadFromFile(path)
	if err != nil {
		return tcrmodel.ReferenceCorpus{}, err
	}

	_ = cache.SaveBinaryCache(corpus, cachePath)
	return corpus, nil
}

func printHits(hits []tcrmodel.Hit, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	if len(hits) == 0 {
		fmt.Println("no hits")
		return nil
	}
	for _, h := range hits {
		fmt.Printf("%.4f\t%s\t%s\t%s\n", h.Score, h.ReferenceEntry.CDR3, h.ReferenceEntry.AntigenEpitope, h.ReferenceEntry.AntigenSpecies)
	}
	return nil
}
