package recorder

import (
	"encoding/json"
	"os"
)

var openFileWriter = createOnlyFileWriter

type writer interface {
	WriteString(s string) (int, error)
	Close() error
}

func writeLine(w writer, data interface{}) error {
	j, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = w.WriteString(string(j) + "\n")
	return err
}

func createOnlyFileWriter(path string) (writer, error) {
	flags := os.O_APPEND | os.O_WRONLY | os.O_CREATE | os.O_EXCL
	return os.OpenFile(path, flags, 0644)
}
