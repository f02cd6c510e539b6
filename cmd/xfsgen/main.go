package main

import (
	"fmt"
	"os"

	"github.com/fsforge/xfsgen/xfsgen"
	"github.com/fsforge/xfsgen/xfsgen/logger"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	noProgress bool

	createSizeMB  int64
	inflateSizeGB int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xfsgen",
		Short: "A CLI tool for building synthetic XFS test images",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLogLevel(logger.LogLevelDebug)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	// create command
	createCmd := &cobra.Command{
		Use:   "create <PATH>",
		Short: "Build a new image with a synthetic superblock and seeded recoverable content",
		Args:  cobra.ExactArgs(1),
		Run:   runCreate,
	}
	createCmd.Flags().Int64Var(&createSizeMB, "size-mb", 50, "Logical size of the image in megabytes")
	createCmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable progress bar (progress is enabled by default)")

	// inflate command
	inflateCmd := &cobra.Command{
		Use:   "inflate <INPUT> <OUTPUT>",
		Short: "Rewrite an image's superblock so it reports a much larger logical capacity",
		Args:  cobra.ExactArgs(2),
		Run:   runInflate,
	}
	inflateCmd.Flags().Int64Var(&inflateSizeGB, "size-gb", 150, "Target logical size in gigabytes")
	inflateCmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable progress bar (progress is enabled by default)")

	// inspect command
	inspectCmd := &cobra.Command{
		Use:   "inspect <PATH>",
		Short: "Decode and print an image's superblock geometry and content digest",
		Args:  cobra.ExactArgs(1),
		Run:   runInspect,
	}

	// seeds command
	seedsCmd := &cobra.Command{
		Use:   "seeds",
		Short: "List the recoverable content blocks seeded into every built image",
		Args:  cobra.NoArgs,
		Run:   runSeeds,
	}

	rootCmd.AddCommand(createCmd, inflateCmd, inspectCmd, seedsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newProgressCallback wires a byte progress bar to a library callback. The
// bar is created lazily on the first report so a disabled bar costs nothing.
func newProgressCallback(description string) xfsgen.ProgressCallback {
	if noProgress {
		return nil
	}

	var bar *progressbar.ProgressBar
	return func(current, total int64) {
		if bar == nil && total > 0 {
			bar = progressbar.DefaultBytes(total, description)
		}
		if bar != nil {
			bar.Set64(current)
		}
	}
}

func runCreate(cmd *cobra.Command, args []string) {
	path := args[0]
	logicalSize := createSizeMB * 1024 * 1024

	progress := newProgressCallback(fmt.Sprintf("Writing %s", path))

	if err := xfsgen.CreateImage(path, logicalSize, progress); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !noProgress {
		fmt.Println()
	}
	fmt.Printf("Created %s: %d MB physical, %d blocks of %d bytes\n",
		path, createSizeMB, logicalSize/xfsgen.DefaultBlockSize, xfsgen.DefaultBlockSize)
}

func runInflate(cmd *cobra.Command, args []string) {
	inputPath := args[0]
	outputPath := args[1]
	targetSize := inflateSizeGB * 1024 * 1024 * 1024

	progress := newProgressCallback(fmt.Sprintf("Writing %s", outputPath))

	stats, err := xfsgen.Inflate(inputPath, outputPath, targetSize, progress)
	if err != nil {
		if !noProgress {
			fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if !noProgress {
		fmt.Println()
	}
	fmt.Printf("Inflated %s -> %s\n", inputPath, outputPath)
	fmt.Printf("Blocks: %d -> %d (block size %d)\n", stats.OriginalBlocks, stats.NewBlocks, stats.BlockSize)
	fmt.Printf("Physical size: %d MB, reported size: %d GB\n",
		stats.PhysicalBytes/(1024*1024),
		int64(stats.NewBlocks)*int64(stats.BlockSize)/(1024*1024*1024))
}

func runInspect(cmd *cobra.Command, args []string) {
	path := args[0]

	info, err := xfsgen.Inspect(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sb := info.Superblock
	fmt.Printf("Image: %s\n", path)
	fmt.Printf("Magic: 0x%08X\n", sb.Magic)
	fmt.Printf("Block size: %d bytes\n", sb.BlockSize)
	fmt.Printf("Data blocks: %d\n", sb.DataBlocks)
	fmt.Printf("Allocation groups: %d (%d blocks each)\n", sb.AGCount, sb.AGBlocks)
	fmt.Printf("Inode size: %d bytes\n", sb.InodeSize)
	fmt.Printf("Logical size: %d bytes\n", info.LogicalSize())
	fmt.Printf("Physical size: %d bytes\n", info.PhysicalSize)
	fmt.Printf("Digest: %s\n", info.Digest)
}

func runSeeds(cmd *cobra.Command, args []string) {
	fmt.Println("Seeded content blocks:")
	for _, seed := range xfsgen.DefaultSeeds {
		fmt.Printf("%d: %s (%d bytes)\n", seed.Offset, seed.Label, len(seed.Payload))
	}
}
