package file_system_objects

import (
	"github.com/sirupsen/logrus"

	"github.com/deploymenttheory/go-apfs-format/internal/types"
)

const inodeFlagsField = "internal_flags"

// ValidatedInodeFlags is an inode flag set known to contain only bits in
// types.ApfsValidInternalInodeFlags. The zero value is the empty set.
type ValidatedInodeFlags struct {
	flags types.JInodeFlags
}

// Flags returns the underlying flag set
func (v ValidatedInodeFlags) Flags() types.JInodeFlags {
	return v.flags
}

// Bits returns the flag set as the raw on-disk value
func (v ValidatedInodeFlags) Bits() uint64 {
	return uint64(v.flags)
}

func (v ValidatedInodeFlags) String() string {
	return v.flags.String()
}

// ValidateInodeFlags checks bits against the published inode flag mask.
// Any bit outside the mask fails with ErrUnknownBitsSet; the tiering bits
// are not checked here, see CheckPinExclusivity.
func ValidateInodeFlags(bits uint64) (ValidatedInodeFlags, error) {
	flags := types.JInodeFlags(bits)
	if unknown := flags.Unknown(); unknown != 0 {
		return ValidatedInodeFlags{}, newFlagError(inodeFlagsField, bits, uint64(unknown), ErrUnknownBitsSet)
	}
	return ValidatedInodeFlags{flags: flags}, nil
}

// StripUnknownInodeFlags drops every bit outside the published mask and
// returns the remaining set along with the bits that were dropped.
func StripUnknownInodeFlags(bits uint64) (ValidatedInodeFlags, types.JInodeFlags) {
	flags := types.JInodeFlags(bits)
	return ValidatedInodeFlags{flags: flags & types.ApfsValidInternalInodeFlags}, flags.Unknown()
}

// InheritedFlags returns the flags a new child object takes from its parent
// directory. Every other flag starts clear.
func InheritedFlags(parent ValidatedInodeFlags) ValidatedInodeFlags {
	return ValidatedInodeFlags{flags: parent.flags & types.InodeInheritedInternalFlags}
}

// ClonedFlags returns the flags carried from source to a clone of it.
// Every other flag has to be recomputed for the clone.
func ClonedFlags(source ValidatedInodeFlags) ValidatedInodeFlags {
	return ValidatedInodeFlags{flags: source.flags & types.InodeClonedInternalFlags}
}

// CheckPinExclusivity fails with ErrConflictingPinState when an inode is
// pinned to both the main device and the secondary tier. The format itself
// doesn't enforce this.
func CheckPinExclusivity(flags ValidatedInodeFlags) error {
	if flags.flags.Has(types.ApfsInodePinnedMask) {
		return newFlagError(inodeFlagsField, flags.Bits(), uint64(types.ApfsInodePinnedMask), ErrConflictingPinState)
	}
	return nil
}

// InodeFlagValidatorOptions selects the reader policy
type InodeFlagValidatorOptions struct {
	// Lenient strips unknown bits with a warning instead of rejecting them.
	Lenient bool
	// EnforcePinExclusivity adds CheckPinExclusivity to Validate.
	EnforcePinExclusivity bool
}

// InodeFlagValidator applies a reader policy to raw inode flags.
// It is safe for concurrent use.
type InodeFlagValidator struct {
	options InodeFlagValidatorOptions
	logger  logrus.FieldLogger
}

// NewInodeFlagValidator creates a validator. A nil logger uses the logrus
// standard logger.
func NewInodeFlagValidator(options InodeFlagValidatorOptions, logger logrus.FieldLogger) *InodeFlagValidator {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &InodeFlagValidator{
		options: options,
		logger:  logger,
	}
}

// Options returns the policy the validator was built with
func (v *InodeFlagValidator) Options() InodeFlagValidatorOptions {
	return v.options
}

// Validate decodes bits according to the validator's policy.
func (v *InodeFlagValidator) Validate(bits uint64) (ValidatedInodeFlags, error) {
	var (
		flags ValidatedInodeFlags
		err   error
	)
	if v.options.Lenient {
		var stripped types.JInodeFlags
		flags, stripped = StripUnknownInodeFlags(bits)
		if stripped != 0 {
			v.logger.WithFields(logrus.Fields{
				"field":    inodeFlagsField,
				"bits":     types.JInodeFlags(bits).String(),
				"stripped": stripped.String(),
			}).Warn("ignoring unknown inode flags")
		}
	} else {
		flags, err = ValidateInodeFlags(bits)
		if err != nil {
			return ValidatedInodeFlags{}, err
		}
	}

	if v.options.EnforcePinExclusivity {
		if err := CheckPinExclusivity(flags); err != nil {
			return ValidatedInodeFlags{}, err
		}
	}
	return flags, nil
}

// Inherit validates the parent's raw flags and returns the flags for a new child
func (v *InodeFlagValidator) Inherit(parentBits uint64) (ValidatedInodeFlags, error) {
	parent, err := v.Validate(parentBits)
	if err != nil {
		return ValidatedInodeFlags{}, err
	}
	return InheritedFlags(parent), nil
}

// Clone validates the source's raw flags and returns the flags for its clone
func (v *InodeFlagValidator) Clone(sourceBits uint64) (ValidatedInodeFlags, error) {
	source, err := v.Validate(sourceBits)
	if err != nil {
		return ValidatedInodeFlags{}, err
	}
	return ClonedFlags(source), nil
}
