package file

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/probetable/internal/utils"
	"io"
	"os"
)

// WordFunc - Called once per word read, a returned error stops the reading
type WordFunc func(word string) error

// ReadWordsFromFile - Opens the file and reads it line by line handing every word to fn.
//   - fileName is the name of the text file to read
//   - delimiters is the set of characters separating words
//   - fn is called for every word in file order
//
// It returns:
//   - words is the number of words handed to fn
//   - err is a standard error if the file could not be read or fn failed
func ReadWordsFromFile(fileName, delimiters string, fn WordFunc) (words int64, err error) {
	f, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		err = fmt.Errorf("error while opening word file: %w", err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	return ReadWords(f, delimiters, fn)
}

// ReadWords - Same as ReadWordsFromFile but reads from any io.Reader. Line endings are stripped before splitting,
// a last line without line ending is read as well.
func ReadWords(r io.Reader, delimiters string, fn WordFunc) (words int64, err error) {
	var line string
	fr := bufio.NewReader(r)

	for {
		line, err = fr.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			err = fmt.Errorf("error while reading word file: %w", err)
			return
		}
		eof := err != nil
		err = nil

		for _, word := range utils.SplitTokens(utils.TrimLineEnding(line), delimiters) {
			err = fn(word)
			if err != nil {
				return
			}
			words++
		}

		if eof {
			return
		}
	}
}
