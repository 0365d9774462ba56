package trackfile

import (
	"fmt"

	"github.com/mpapenbr/f1gp-track-go/pkg/model"
)

// commandExtraArgs maps a command id to the number of i16 arguments
// following the two byte command header. The counts were collected by
// format research and are not confirmed for every id.
var commandExtraArgs = map[uint8]int{
	0x80: 2, 0x81: 2, 0x82: 1, 0x83: 1, 0x84: 1, 0x85: 1, 0x86: 1, 0x87: 1,
	0x88: 1, 0x89: 1, 0x8A: 6, 0x8B: 1, 0x8C: 1, 0x8D: 1, 0x8E: 1, 0x8F: 1,
	0x90: 1, 0x91: 1, 0x92: 1, 0x93: 1, 0x94: 1, 0x95: 1, 0x96: 0, 0x97: 1,
	0x98: 1, 0x99: 1, 0x9A: 1, 0x9B: 1, 0x9C: 1, 0x9D: 2, 0x9E: 2, 0x9F: 3,
	0xA0: 3, 0xA1: 1, 0xA2: 1, 0xA3: 1, 0xA4: 0, 0xA5: 1, 0xA6: 1, 0xA7: 1,
	0xA8: 2, 0xA9: 5, 0xAA: 0, 0xAB: 1, 0xAC: 4,
}

// CommandExtraArgs returns the number of arguments read after the command
// header. Unknown ids have none.
func CommandExtraArgs(commandID uint8) int {
	return commandExtraArgs[commandID]
}

// KnownCommand reports whether the id is part of the documented id space.
func KnownCommand(commandID uint8) bool {
	_, ok := commandExtraArgs[commandID]
	return ok
}

// DecodeCommand reads the arguments of a command whose two byte header
// (firstArg, commandID) has already been consumed. Argument values are not
// validated and unknown ids are kept as they are.
func DecodeCommand(c *Cursor, commandID, firstArg uint8) (model.TrackSectionCommand, error) {
	extra := CommandExtraArgs(commandID)
	args := make([]int16, 1, extra+1)
	args[0] = int16(firstArg)
	for i := 0; i < extra; i++ {
		v, err := c.ReadI16()
		if err != nil {
			return model.TrackSectionCommand{}, fmt.Errorf("command 0x%02X arg %d: %w", commandID, i+1, err)
		}
		args = append(args, v)
	}
	return model.TrackSectionCommand{CommandID: commandID, Args: args}, nil
}
