package main

import "runtime"

func init() {
	// SDL wants every call on the thread that initialised it.
	runtime.LockOSThread()
}

func main() {
	Execute()
}
