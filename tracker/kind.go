/*
DESCRIPTION
  kind.go defines the closed set of tracking algorithms that may be named on
  the command line.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package tracker provides single object trackers selected by name, and
// Multi, which tracks several objects at once.
package tracker

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies a tracking algorithm.
type Kind int

// The tracking algorithms, in the order they are listed to users.
const (
	Boosting Kind = iota
	MIL
	KCF
	TLD
	MedianFlow
	GOTURN
	MOSSE
	CSRT
	numKinds
)

var kindNames = [numKinds]string{
	Boosting:   "BOOSTING",
	MIL:        "MIL",
	KCF:        "KCF",
	TLD:        "TLD",
	MedianFlow: "MEDIANFLOW",
	GOTURN:     "GOTURN",
	MOSSE:      "MOSSE",
	CSRT:       "CSRT",
}

// ErrUnknownKind is returned when a name matches no tracking algorithm.
var ErrUnknownKind = errors.New("unknown tracker type")

// String returns the name of the algorithm as given on the command line.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Kinds returns every Kind in listing order.
func Kinds() []Kind {
	ks := make([]Kind, numKinds)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// Names returns the name of every Kind in listing order.
func Names() []string {
	return append([]string(nil), kindNames[:]...)
}

// ParseKind returns the Kind called name. Names are matched exactly.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return -1, errors.Wrapf(ErrUnknownKind, "%q, available trackers are: %s", name, strings.Join(kindNames[:], " "))
}
