package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/protobuf/proto"

	pb "stream-lab/proto/storage"
)

// Read-only dump of the server's BadgerDB, one row per stored entry.
// Covers the "message:" timeline and the "upload:" records.
func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	prefix := flag.String("prefix", "message:", "Prefix to scan (message: or upload:)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "ID", "Who", "Detail", "Status", "Timestamp"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			rawKey := string(item.Key())

			err := item.Value(func(v []byte) error {
				row, err := decodeRow(rawKey, v)
				if err != nil {
					// Skip the broken entry instead of aborting the whole scan
					fmt.Printf("Error unmarshaling key %s: %v\n", rawKey, err)
					return nil
				}
				table.Append(row)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func decodeRow(key string, value []byte) ([]string, error) {
	if strings.HasPrefix(key, "upload:") {
		var rec pb.UploadRecord
		if err := proto.Unmarshal(value, &rec); err != nil {
			return nil, err
		}
		detail := fmt.Sprintf("%s (%d bytes)", rec.Filename, rec.Size)
		return []string{key, shortID(rec.FileId), rec.Path, detail, rec.Status, rec.UploadedAt}, nil
	}

	var msg pb.StoredMessage
	if err := proto.Unmarshal(value, &msg); err != nil {
		return nil, err
	}
	return []string{key, shortID(msg.Id), msg.Username, msg.Body, msg.Status, msg.Timestamp}, nil
}

// Long generated ids wreck column alignment, keep the head only.
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	db, err := badger.Open(opts)
	if err != nil {
		// Corrupted value log needs one open in write mode to truncate
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}

			db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
