// Package hello provides the greeting and a runnable printing it.
package hello

// HelloWorld is the greeting returned by GetHelloWorld.
const HelloWorld = "Hello World!"

// GetHelloWorld returns the greeting. It is pure and safe for concurrent use.
func GetHelloWorld() string {
	return HelloWorld
}
