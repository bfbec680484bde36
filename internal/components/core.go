package components

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed core.yaml
var coreSource []byte

var (
	coreOnce sync.Once
	coreLib  *Library
	coreErr  error
)

// Core 返回内置组件库，只解码一次并共享，调用方不能修改
func Core() (*Library, error) {
	coreOnce.Do(func() {
		coreLib, coreErr = Load(bytes.NewReader(coreSource))
	})
	return coreLib, coreErr
}

// MustCore 与 Core 相同，内置组件库损坏时 panic
func MustCore() *Library {
	lib, err := Core()
	if err != nil {
		panic(err)
	}
	return lib
}
