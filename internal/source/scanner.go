package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cardworth/internal/model"
)

// ScanDir discovers all card definition files (*.toml) in the cards
// directory. A missing directory is not an error: no cards yet.
func ScanDir(cardsDir string) ([]DiscoveredFile, error) {
	info, err := os.Stat(cardsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var files []DiscoveredFile

	err = filepath.WalkDir(cardsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // intentionally skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if filepath.Ext(name) != ".toml" {
			return nil
		}
		// The config file itself may live alongside cards.
		if name == "config.toml" {
			return nil
		}

		files = append(files, DiscoveredFile{
			Path:   path,
			CardID: strings.TrimSuffix(name, ".toml"),
		})
		return nil
	})

	sort.Slice(files, func(i, j int) bool {
		return files[i].CardID < files[j].CardID
	})

	return files, err
}

// CountIssuers returns the number of unique issuers among cards.
func CountIssuers(cards []model.CardSnapshot) int {
	seen := make(map[string]struct{})
	for _, c := range cards {
		seen[c.Issuer] = struct{}{}
	}
	return len(seen)
}
