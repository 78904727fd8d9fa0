package latex

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
)

// Render writes the LaTeX source into a fresh working directory, runs the
// compiler command there and returns the bytes of the expected output file.
// A non-zero exit or a missing output file returns nil bytes; the reason is
// logged but not classified further. The working directory is removed on
// every exit path.
func Render(command []string, sourceName, source, outputName, supportDir string) ([]byte, error) {
	if len(command) == 0 {
		return nil, fmt.Errorf("empty compiler command")
	}

	workDir, err := os.MkdirTemp("", "genapply-render-")
	if err != nil {
		return nil, fmt.Errorf("failed to create working directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	sourcePath := filepath.Join(workDir, sourceName)
	if err := os.WriteFile(sourcePath, []byte(source), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", sourceName, err)
	}

	if supportDir != "" {
		if err := copySupportFiles(supportDir, workDir); err != nil {
			return nil, fmt.Errorf("failed to copy support files: %w", err)
		}
	}

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Dir = workDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Printf("LaTeX compilation failed: %v, output: %s", err, string(output))
		return nil, fmt.Errorf("document compilation failed")
	}

	outputPath := filepath.Join(workDir, outputName)
	result, err := os.ReadFile(outputPath)
	if err != nil {
		log.Printf("Expected output %s not found after compilation", outputName)
		return nil, fmt.Errorf("document compilation produced no output")
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("document compilation produced an empty file")
	}

	return result, nil
}

func copySupportFiles(supportDir, workDir string) error {
	entries, err := os.ReadDir(supportDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		src, err := os.Open(filepath.Join(supportDir, entry.Name()))
		if err != nil {
			return err
		}
		dst, err := os.Create(filepath.Join(workDir, entry.Name()))
		if err != nil {
			src.Close()
			return err
		}
		_, err = io.Copy(dst, src)
		src.Close()
		dst.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
