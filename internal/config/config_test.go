package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chronos-tachyon/huffman/v2"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (suite *ConfigTestSuite) SetupTest() {
	for _, key := range []string{"HUFF_LAYOUT", "HUFF_MAX_TREE_DEPTH", "HUFF_WORKERS"} {
		suite.T().Setenv(key, "")
	}
}

func (suite *ConfigTestSuite) TestReadFillsDefaults() {
	contents := `
layout: sentinel
workers: 4
`
	config, err := Read(strings.NewReader(contents))
	suite.Require().NoError(err)

	expected := &Config{
		Layout:       "sentinel",
		MaxTreeDepth: huffman.DefaultMaxTreeDepth,
		Workers:      4,
	}
	if diff := cmp.Diff(expected, config); diff != "" {
		suite.Failf("wrong configuration", "(-expected +actual):\n%s", diff)
	}
}

func (suite *ConfigTestSuite) TestReadEmpty() {
	config, err := Read(strings.NewReader(""))
	suite.Require().NoError(err)
	suite.Require().Equal(Default(), config)
}

func (suite *ConfigTestSuite) TestReadUnknownField() {
	_, err := Read(strings.NewReader("compression: max\n"))
	suite.Require().Error(err)
}

func (suite *ConfigTestSuite) TestReadFileOrDefault() {
	config, err := ReadFileOrDefault("")
	suite.Require().NoError(err)
	suite.Require().Equal(Default(), config)

	path := filepath.Join(suite.T().TempDir(), "huff.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte("maxTreeDepth: 12\nverbose: true\n"), 0644))

	config, err = ReadFileOrDefault(path)
	suite.Require().NoError(err)
	suite.Require().Equal(12, config.MaxTreeDepth)
	suite.Require().True(config.Verbose)
	suite.Require().Equal("tagged", config.Layout)

	_, err = ReadFileOrDefault(filepath.Join(suite.T().TempDir(), "missing.yaml"))
	suite.Require().Error(err)
}

func (suite *ConfigTestSuite) TestEnvironmentOverrides() {
	suite.T().Setenv("HUFF_LAYOUT", "sentinel")
	suite.T().Setenv("HUFF_MAX_TREE_DEPTH", "16")
	suite.T().Setenv("HUFF_WORKERS", "2")

	config, err := ReadFileOrDefault("")
	suite.Require().NoError(err)

	options, err := config.Options()
	suite.Require().NoError(err)
	suite.Require().Equal(huffman.Options{
		Layout:       huffman.LayoutSentinel,
		MaxTreeDepth: 16,
		Workers:      2,
	}, options)

	suite.T().Setenv("HUFF_WORKERS", "many")
	_, err = ReadFileOrDefault("")
	suite.Require().Error(err)
}

func (suite *ConfigTestSuite) TestOptionsValidation() {
	config := Default()
	options, err := config.Options()
	suite.Require().NoError(err)
	suite.Require().Equal(huffman.DefaultOptions(), options)

	config.Layout = "zip"
	_, err = config.Options()
	suite.Require().Error(err)

	config = Default()
	config.MaxTreeDepth = huffman.MaxTreeDepthLimit + 1
	_, err = config.Options()
	suite.Require().Error(err)
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
