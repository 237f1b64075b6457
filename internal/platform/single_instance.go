// Package platform holds small OS integration helpers.
package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// AcquireSingleInstance binds a localhost port derived from the app
// name so a second copy of the program fails fast. It returns a
// release function for shutdown.
func AcquireSingleInstance(appName string) (release func(), err error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", lockPort(appName)))
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return func() { _ = listener.Close() }, nil
}

func lockPort(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	return minPort + int(hash.Sum32()%uint32(maxPort-minPort+1))
}
