// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import "os"

func main() {
	os.Exit(Execute())
}
