package util

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
)

// MD5File computes the checksum of a data file, logged alongside generated
// artifacts so a batch file can be traced back to its exact input corpus.
func MD5File(fileName string) (string, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return "", err
	}
	defer file.Close()

	md5 := md5.New()
	if _, err := io.Copy(md5, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", md5.Sum(nil)), nil
}
