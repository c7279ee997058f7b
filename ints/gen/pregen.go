package main

import (
	"fmt"
	"os"
)

func main() {
	fh, err := os.Create("base10k.txt")
	if err != nil {
		panic(err)
	}
	defer fh.Close()
	for i := range 10000 {
		_, _ = fmt.Fprintf(fh, "%04d", i)
	}
}
