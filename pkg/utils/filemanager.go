// =============================================================================
// Cart CSV Parser - File Manager Utility
// =============================================================================
//
// This module provides the file management around the parse pipeline:
//   - Discovery of cart CSV files for batch mode
//   - Archival of successfully parsed files
//   - Receipt file naming
//   - Directory management
//
// ARCHIVAL STRATEGY:
//   - Input files are moved to the archive directory after a successful parse
//   - Files that fail validation remain in place so they can be fixed and
//     re-run
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for batch parsing.
type FileManager struct {
	// InputDir is the directory scanned for cart CSV files.
	InputDir string

	// OutputDir is the directory where receipts are written.
	OutputDir string

	// ArchiveDir is the directory parsed input files are moved to.
	ArchiveDir string

	// ArchiveOnParse determines whether input files are archived after a
	// successful parse.
	ArchiveOnParse bool
}

// NewFileManager creates a FileManager over the given directories.
func NewFileManager(inputDir, outputDir, archiveDir string) *FileManager {
	return &FileManager{
		InputDir:       inputDir,
		OutputDir:      outputDir,
		ArchiveDir:     archiveDir,
		ArchiveOnParse: true,
	}
}

// EnsureDirectories creates all required directories if they don't exist.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{
		fm.InputDir,
		fm.OutputDir,
		fm.ArchiveDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverCartFiles scans the input directory for cart files matching the
// pattern. An empty pattern defaults to "*.csv".
func (fm *FileManager) DiscoverCartFiles(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*.csv"
	}

	files, err := filepath.Glob(filepath.Join(fm.InputDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}

	var result []string
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			result = append(result, file)
		}
	}

	return result, nil
}

// =============================================================================
// FILE ARCHIVAL
// =============================================================================

// ArchiveCartFile moves a parsed cart file to the archive directory and
// returns the archived path.
func (fm *FileManager) ArchiveCartFile(filePath string) (string, error) {
	if !fm.ArchiveOnParse {
		return filePath, nil
	}

	archivePath := filepath.Join(fm.ArchiveDir, filepath.Base(filePath))

	if err := os.MkdirAll(fm.ArchiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	if err := os.Rename(filePath, archivePath); err != nil {
		// Rename fails across devices; fall back to copy and delete.
		if err := copyFile(filePath, archivePath); err != nil {
			return "", fmt.Errorf("failed to copy file to archive: %w", err)
		}
		if err := os.Remove(filePath); err != nil {
			return "", fmt.Errorf("failed to remove original file: %w", err)
		}
	}

	return archivePath, nil
}

// =============================================================================
// RECEIPT FILE NAMING
// =============================================================================

// GenerateReceiptFileName generates a receipt file name from a format string.
//
// PLACEHOLDERS:
//   {uuid}      - A random UUID
//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//   {date}      - Current date (YYYYMMDD)
//   {time}      - Current time (HHMMSS)
//   {original}  - Source cart file name, without extension
//
// EXAMPLE:
//   format:   "receipt_{original}_{timestamp}.xlsx"
//   cartPath: "input/cart.csv"
//   output:   "receipt_cart_20240115_143022.xlsx"
func GenerateReceiptFileName(format, cartPath string) string {
	now := time.Now()

	original := filepath.Base(cartPath)
	original = strings.TrimSuffix(original, filepath.Ext(original))

	replacements := map[string]string{
		"{uuid}":      uuid.New().String(),
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
		"{original}":  original,
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	if !strings.HasSuffix(strings.ToLower(result), ".xlsx") {
		result += ".xlsx"
	}

	return result
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return err
	}

	return destFile.Sync()
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
