/*
DESCRIPTION
  args.go maps the positional command line tokens onto config variables.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package config

// MaxArgs is the number of positional tokens that are recognised.
const MaxArgs = 5

// ArgsToVars maps positional tokens, in the order
//
//	[source] [path or camera id] [height] [width] [tracker]
//
// onto a variable map suitable for Update. Missing trailing tokens are simply
// absent from the map, so the corresponding fields keep their defaults. The
// number of tokens beyond MaxArgs that were ignored is also returned.
func ArgsToVars(args []string) (vars map[string]string, ignored int) {
	vars = make(map[string]string)
	if len(args) > MaxArgs {
		ignored = len(args) - MaxArgs
		args = args[:MaxArgs]
	}
	if len(args) == 0 {
		return vars, ignored
	}

	vars[KeyInput] = args[0]
	detail := KeyCameraID
	if args[0] == FileToken {
		detail = KeyInputPath
	}

	keys := []string{detail, KeyHeight, KeyWidth, KeyTracker}
	for i, a := range args[1:] {
		vars[keys[i]] = a
	}
	return vars, ignored
}

// ParseArgs applies positional tokens to c. Fields that are not given a token
// are left as they are.
func (c *Config) ParseArgs(args []string) error {
	vars, ignored := ArgsToVars(args)
	if ignored > 0 {
		c.Logger.Warning("ignoring extra arguments", "count", ignored)
	}
	return c.Update(vars)
}
