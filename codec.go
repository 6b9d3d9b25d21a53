package huffman

import (
	"context"
	"math"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
)

const (
	// DefaultMaxTreeDepth is the default limit on code length.
	DefaultMaxTreeDepth = 20

	// MaxTreeDepthLimit is the largest accepted code length limit.  A tree
	// of depth d serializes to as many as 2^(d+1)-1 slots.
	MaxTreeDepthLimit = 28
)

// Options controls how a Codec encodes.  Decoding takes every setting it
// needs from the container.
type Options struct {
	Layout       Layout
	MaxTreeDepth int
	Workers      int
}

// DefaultOptions returns the Options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Layout:       LayoutTagged,
		MaxTreeDepth: DefaultMaxTreeDepth,
		Workers:      1,
	}
}

// Validate checks that every option is in range.
func (o Options) Validate() error {
	if o.Layout != LayoutTagged && o.Layout != LayoutSentinel {
		return errors.Errorf("Unknown layout 0x%02x", byte(o.Layout))
	}
	if o.MaxTreeDepth < 1 || o.MaxTreeDepth > MaxTreeDepthLimit {
		return errors.Errorf("Max tree depth must be between 1 and %d, got %d", MaxTreeDepthLimit, o.MaxTreeDepth)
	}
	if o.Workers < 1 {
		return errors.Errorf("Workers must be positive, got %d", o.Workers)
	}
	return nil
}

// Codec encodes byte slices into containers and decodes them back.  A Codec
// holds no per-call state and may be used concurrently.
type Codec struct {
	logger  logger.Logger
	options Options
}

// NewCodec creates a Codec.
func NewCodec(parentLogger logger.Logger, options Options) (*Codec, error) {
	if err := options.Validate(); err != nil {
		return nil, errors.Wrap(err, "Invalid codec options")
	}

	return &Codec{
		logger:  parentLogger.GetChild("huffman"),
		options: options,
	}, nil
}

// Options returns the options this Codec encodes with.
func (c *Codec) Options() Options {
	return c.options
}

// Analyze counts the frequencies of data and builds the Encoder for it.
func (c *Codec) Analyze(ctx context.Context, data []byte) (*Encoder, *FrequencyTable, error) {
	freqs, err := CountFrequencies(ctx, data, c.options.Workers)
	if err != nil {
		return nil, nil, errors.Wrap(err, "Failed to count frequencies")
	}

	var enc Encoder
	if err := enc.Init(freqs); err != nil {
		return nil, nil, errors.Wrap(err, "Failed to initialize encoder")
	}

	return &enc, freqs, nil
}

// Encode compresses data into a container.
//
// An empty input produces a container with a zero length, an empty tree and
// no payload.
func (c *Codec) Encode(ctx context.Context, data []byte) ([]byte, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, errors.Wrapf(ErrInput, "Input of %d bytes exceeds the container limit", len(data))
	}

	container := Container{
		Layout: c.options.Layout,
		Length: uint32(len(data)),
		Tree:   newSerializedTree(0),
	}

	if len(data) != 0 {
		enc, freqs, err := c.Analyze(ctx, data)
		if err != nil {
			return nil, err
		}

		if c.options.Layout == LayoutSentinel {
			for _, reserved := range []Symbol{SentinelByte, TerminatorByte} {
				if count := freqs.Count(reserved); count != 0 {
					return nil, errors.Wrapf(ErrAlphabet,
						"Input contains %d occurrences of byte %q, which the %s layout reserves",
						count,
						byte(reserved),
						c.options.Layout)
				}
			}
		}

		container.Tree, err = enc.Serialize(c.options.MaxTreeDepth)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to serialize tree")
		}

		var numBits uint64
		container.Payload, numBits, err = enc.Pack(data)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to pack payload")
		}

		c.logger.DebugWith("Built code",
			"symbols", enc.NumSymbols(),
			"minSize", enc.MinSize(),
			"maxSize", enc.MaxSize(),
			"bits", numBits)
	}

	encoded, err := container.MarshalBinary()
	if err != nil {
		return nil, errors.Wrap(err, "Failed to marshal container")
	}

	c.logger.DebugWith("Encoded",
		"layout", container.Layout.String(),
		"length", len(data),
		"slots", container.Tree.Len(),
		"payloadBytes", len(container.Payload),
		"encodedBytes", len(encoded))

	return encoded, nil
}

// Decode reconstructs the original bytes from a container produced by
// Encode.  It never returns a partial result: on failure the output is nil.
func (c *Codec) Decode(encoded []byte) ([]byte, error) {
	var container Container
	if err := container.UnmarshalBinary(encoded); err != nil {
		return nil, errors.Wrap(err, "Failed to parse container")
	}

	var dec Decoder
	if err := dec.Init(container.Tree); err != nil {
		return nil, errors.Wrap(err, "Failed to initialize decoder")
	}

	decoded, err := dec.Decode(container.Payload, int(container.Length))
	if err != nil {
		return nil, errors.Wrap(err, "Failed to decode payload")
	}

	c.logger.DebugWith("Decoded",
		"layout", container.Layout.String(),
		"slots", container.Tree.Len(),
		"leaves", dec.NumLeaves(),
		"length", len(decoded))

	return decoded, nil
}

// Inspect parses a container without decoding its payload.
func (c *Codec) Inspect(encoded []byte) (*Container, error) {
	var container Container
	if err := container.UnmarshalBinary(encoded); err != nil {
		return nil, errors.Wrap(err, "Failed to parse container")
	}
	return &container, nil
}
