// resetdemo wipes every application and its stored files so a demo can be
// rerun from a clean slate. Jobs are kept; their deadline windows stay as
// they were.
package main

import (
	"context"
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"hireos/internal/blob"
	"hireos/internal/store"
)

func main() {
	var dryRun bool
	var dataDir string
	flag.BoolVar(&dryRun, "dry-run", true, "If true, do not delete anything; just print what would go")
	flag.StringVar(&dataDir, "data-dir", "./data", "Base directory of the filesystem blob store")
	flag.Parse()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	log.Printf("Connecting to DB...")
	db, err := store.NewDB(dbURL)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if dryRun {
		candidates, err := db.ListJobs(ctx, "")
		if err != nil {
			log.Fatalf("query failed: %v", err)
		}
		total := 0
		for _, job := range candidates {
			cands, err := db.ListCandidates(ctx, job.ID)
			if err != nil {
				log.Fatalf("query failed: %v", err)
			}
			log.Printf("[dry-run] job %d (%s): would delete %d candidates", job.ID, job.Title, len(cands))
			total += len(cands)
		}
		log.Printf("[dry-run] would delete %d candidates plus stored resumes and transcripts", total)
		return
	}

	n, err := db.DeleteCandidates(ctx)
	if err != nil {
		log.Fatalf("failed to delete candidates: %v", err)
	}
	log.Printf("Deleted %d candidates", n)

	blobs, err := blob.NewFSStore(dataDir)
	if err != nil {
		log.Fatalf("failed to open blob store: %v", err)
	}
	for _, prefix := range []string{"resumes", "transcripts"} {
		removed, err := blobs.DeletePrefix(ctx, prefix)
		if err != nil {
			log.Fatalf("failed to clear %s: %v", prefix, err)
		}
		log.Printf("Removed %d files under %s/", removed, prefix)
	}

	log.Printf("Demo reset complete")
}
