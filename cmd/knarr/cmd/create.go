/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/segmentio/ksuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjornk/knarr/pkg/archive"
)

var (
	createFormat      string
	createCompression string
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create <output> <dir>",
	Short: "Create a cpio archive from a directory tree",
	Long: `Create a cpio archive containing every entry beneath a directory.

Example:
  knarr create initramfs.cpio ./rootfs
  knarr create --format odc --compress gzip tree.cpio.gz ./tree`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, dir := args[0], args[1]

		formatName := createFormat
		if formatName == "" {
			formatName = cfg.Archive.Format
		}
		format, err := archive.ParseFormat(formatName)
		if err != nil {
			return err
		}

		compressionName := createCompression
		if compressionName == "" {
			compressionName = cfg.Archive.Compression
		}
		compression, err := archive.ParseCompression(compressionName)
		if err != nil {
			return err
		}

		// Build into a uniquely-named sibling and rename into place so a
		// failed run never leaves a truncated archive at the target path.
		tmp := filepath.Join(filepath.Dir(output), fmt.Sprintf(".%s.%s", filepath.Base(output), ksuid.New().String()))
		f, err := os.OpenFile(tmp, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			return fmt.Errorf("could not create output file: %w", err)
		}
		defer func() {
			f.Close()
			os.Remove(tmp)
		}()

		zw, err := compression.Wrap(f)
		if err != nil {
			return err
		}

		entries, err := archive.Archive(cmd.Context(), dir, zw, archive.WithFormat(format))
		if err != nil {
			return fmt.Errorf("could not build archive: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("could not flush compressor: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("could not close output file: %w", err)
		}
		if err := os.Rename(tmp, output); err != nil {
			return fmt.Errorf("could not move archive into place: %w", err)
		}

		logrus.WithFields(logrus.Fields{
			"output":   output,
			"entries":  entries,
			"format":   format.String(),
			"compress": compression.String(),
		}).Info("archive created")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createFormat, "format", "f", "", "Archive format: newc, crc, odc, or bin")
	createCmd.Flags().StringVarP(&createCompression, "compress", "c", "", "Stream compression: none, gzip, zstd, or lz4")
}
