package main

import (
	"fmt"
	"os"
)

// requireFile fails fast when path does not name an existing regular
// file, so commands never open a workbook they cannot complete.
func requireFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("not a file: %s", path)
	}
	return nil
}

// requireDir fails fast when path does not name an existing directory.
func requireDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory not found: %s", path)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", path)
	}
	return nil
}
