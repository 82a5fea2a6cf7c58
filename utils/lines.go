package utils

import (
	"bufio"
	"io"
	"strings"

	"turkmorph.org/core/logger"
)

// NewLineReader streams the non-empty, non-comment lines of r.
// Lines starting with any of commentPrefixes are skipped and repeated lines are sent once.
func NewLineReader(r io.Reader, component string, commentPrefixes ...string) <-chan string {
	tmcLogger := logger.NewLogger("LineReader (" + component + ")")

	out := make(chan string)

	go func() {
		defer close(out)

		br := bufio.NewReader(r)

		// to remove duplicates
		var hashes = make(map[uint64]bool)

		for {
			line, err := br.ReadString('\n')
			if len(line) == 0 {
				if err == io.EOF {
					break
				} else if err != nil {
					tmcLogger.Error().Err(err).Msg("Could not read line")
					return
				}
			}

			line = strings.TrimSpace(line)
			if len(line) == 0 || hasAnyPrefix(line, commentPrefixes) {
				if err == io.EOF {
					break
				}
				continue
			}

			hash := HashString(line)
			if !hashes[hash] {
				hashes[hash] = true
				out <- line
			}

			if err == io.EOF {
				break
			}
		}
	}()

	return out
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
