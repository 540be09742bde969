package detviz

import (
	"bufio"
	"github.com/pkg/errors"
	"os"
	"strings"
)

// LoadLabels reads the class names the detections refer to from the given
// text file.  It should contain one label per line, the line number being the
// class id.  Trailing blank lines are ignored.
func LoadLabels(file string) ([]string, error) {

	// open the file
	f, err := os.Open(file)

	if err != nil {
		return nil, errors.Wrap(err, "error opening file")
	}

	defer f.Close()

	// create a scanner to read the file.
	scanner := bufio.NewScanner(f)

	var labels []string

	// read and trim each line
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		labels = append(labels, line)
	}

	// check for errors during scanning
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading file")
	}

	// blank lines at the end of the file are not class names, blank lines
	// before the last name are kept so class ids stay aligned
	for len(labels) > 0 && labels[len(labels)-1] == "" {
		labels = labels[:len(labels)-1]
	}

	return labels, nil
}
