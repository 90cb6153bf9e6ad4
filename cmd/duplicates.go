package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/corona10/goimagehash"

	"imagetools/img"
	"imagetools/types"
	"imagetools/ui"
)

type DuplicatesCmd struct {
	Directory string `arg:"" name:"directory" help:"Directory to scan for duplicates" type:"existingdir" default:"."`
	Similar   bool   `help:"Compare by perceptual hash instead of exact content"`
	Threshold int    `help:"Hamming distance threshold for similarity (0-64)" default:"10"`
}

func (cmd *DuplicatesCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Image Tools %s", version)))

	if cmd.Similar {
		return cmd.findSimilar()
	}
	return cmd.findExact()
}

// findExact groups files by the MD5 digest of their content.
func (cmd *DuplicatesCmd) findExact() error {
	fmt.Printf("Scanning %s for duplicates...\n", cmd.Directory)

	duplicates, err := img.FindDuplicates(cmd.Directory)
	if err != nil {
		return fmt.Errorf("failed to find duplicates: %w", err)
	}

	if len(duplicates) == 0 {
		fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ No duplicates found"))
		return nil
	}

	digests := make([]string, 0, len(duplicates))
	for digest := range duplicates {
		digests = append(digests, digest)
	}
	sort.Strings(digests)

	fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("Found %d group(s) of duplicates:", len(duplicates))))
	for _, digest := range digests {
		files := duplicates[digest]
		fmt.Printf("\n🔸 Hash %s (%d files):\n", digest, len(files))
		for _, file := range files {
			fmt.Printf("  %s\n", filepath.Base(file))
		}
	}
	return nil
}

// findSimilar compares every pair of images by perceptual hash.
func (cmd *DuplicatesCmd) findSimilar() error {
	images, _, err := img.ScanDirectory(cmd.Directory)
	if err != nil {
		return fmt.Errorf("failed to scan directory: %w", err)
	}
	if len(images) < 2 {
		fmt.Printf("%s\n", ui.InfoStyle.Render("Nothing to compare, need at least 2 images"))
		return nil
	}

	fmt.Printf("%s\n", ui.InfoStyle.Render(fmt.Sprintf("Calculating perceptual hashes for %d images...", len(images))))

	type fileHash struct {
		file string
		hash *goimagehash.ImageHash
	}

	var fileHashes []fileHash
	for _, imageFile := range images {
		hash, err := img.PerceptualHash(imageFile)
		if err != nil {
			fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ Error hashing %s: %v", filepath.Base(imageFile), err)))
			continue
		}
		fileHashes = append(fileHashes, fileHash{file: imageFile, hash: hash})
	}

	fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("Comparing %d images for similarity (threshold: %d):", len(fileHashes), cmd.Threshold)))

	found := false
	for i := 0; i < len(fileHashes); i++ {
		for j := i + 1; j < len(fileHashes); j++ {
			distance, err := fileHashes[i].hash.Distance(fileHashes[j].hash)
			if err != nil {
				fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ Error comparing %s and %s: %v",
					filepath.Base(fileHashes[i].file), filepath.Base(fileHashes[j].file), err)))
				continue
			}

			if distance <= cmd.Threshold {
				fmt.Printf("🎯 Similar (distance %d): %s and %s\n", distance,
					filepath.Base(fileHashes[i].file), filepath.Base(fileHashes[j].file))
				found = true
			}
		}
	}

	if !found {
		fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ No similar images found within threshold"))
	}
	return nil
}
