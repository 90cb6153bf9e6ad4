package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"imagetools/img"
	"imagetools/types"
	"imagetools/ui"
)

// Files above this size get a progress bar while hashing.
const progressThreshold = 32 << 20

// VerifyCmd re-hashes files whose name is an MD5 digest and reports any
// whose content no longer matches, catching corruption and stray renames.
type VerifyCmd struct {
	Directory string `arg:"" name:"directory" help:"Directory with hash-named files to verify" type:"existingdir" default:"."`
}

func (cmd *VerifyCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Image Tools %s", version)))

	images, others, err := img.ScanDirectory(cmd.Directory)
	if err != nil {
		return fmt.Errorf("failed to scan directory: %w", err)
	}
	files := append(images, others...)
	sort.Strings(files)

	fmt.Printf("%s\n", ui.InfoStyle.Render(fmt.Sprintf("Verifying %d files...", len(files))))

	var verified, failed, skipped int
	for _, file := range files {
		name := filepath.Base(file)

		expected, ok := img.HashStem(name)
		if !ok {
			fmt.Printf("⚠️  %s is not hash-named, skipping\n", name)
			skipped++
			continue
		}

		actual, err := cmd.hashFile(file)
		if err != nil {
			fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ Error hashing %s: %v", name, err)))
			failed++
			continue
		}

		if expected == actual {
			fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ %s", name)))
			verified++
		} else {
			fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ %s (expected: %s, got: %s)", name, expected, actual)))
			failed++
		}
	}

	fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("✅ Verified: %d, ❌ Failed: %d, ⚠️ Skipped: %d", verified, failed, skipped)))
	return nil
}

// hashFile calculates the MD5 of a file, with byte progress for large ones.
func (cmd *VerifyCmd) hashFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	if info.Size() < progressThreshold {
		return img.MD5File(path, nil)
	}

	pw := img.NewProgressWriter(info.Size())
	pw.Start()
	digest, err := img.MD5File(path, pw)
	pw.Stop()
	return digest, err
}
