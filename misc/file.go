package misc

import (
	"errors"
	"fmt"
	"os"
)

func ReadFile(fileName string) (error, []byte) {
	if fileName == "" {
		return errors.New("no filename supplied"), []byte{}
	}
	fileBytes, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("unable to read %s - %s", fileName, err), []byte{}
	}
	return nil, fileBytes
}
