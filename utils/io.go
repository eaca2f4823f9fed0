package utils

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// CreateFileWithData creates the file at the given path, truncating any
// previous content, and writes the provided bytes
func CreateFileWithData(fileName string, data []byte) error {
	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadNewlineSeparatedList reads data from the reader interface until
// reaching EOF and returns a slice with data from each line. Blank lines
// and lines starting with '#' are skipped.
func ReadNewlineSeparatedList(rd io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(rd)
	var into []string
	for scanner.Scan() {
		token := strings.TrimSpace(scanner.Text())
		if token == "" || strings.HasPrefix(token, "#") {
			continue
		}
		into = append(into, token)
	}
	return into, scanner.Err()
}
