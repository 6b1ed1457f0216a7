// Package validate turns raw step inputs into a validated model.JobSpec.
// Violations are collected, not short-circuited, so a user sees every
// problem in one pass.
package validate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mlops-actions/sagemaker-training-action/config"
	"github.com/mlops-actions/sagemaker-training-action/internal/core"
	"github.com/mlops-actions/sagemaker-training-action/internal/domain/model"
	"github.com/mlops-actions/sagemaker-training-action/internal/util"
)

// Defaults applied when optional numeric inputs are absent.
const (
	DefaultInstanceType      = "ml.m5.large"
	DefaultInstanceCount     = 1
	DefaultVolumeSizeGB      = 30
	DefaultMaxRuntimeSeconds = 86400
	DefaultCheckInterval     = 60
)

var (
	jobNameRe      = regexp.MustCompile(`^[a-zA-Z0-9-]{1,63}$`)
	roleARNRe      = regexp.MustCompile(`^arn:aws(-[^:]*)?:iam::[0-9]{12}:role/.+$`)
	instanceTypeRe = regexp.MustCompile(`^ml\.[a-z0-9]+\.(nano|micro|small|medium|large|xlarge|[0-9]+xlarge)$`)
)

// commonRegions is advisory only: an unknown region produces a warning, not
// a violation, since new regions appear faster than this list is updated.
var commonRegions = map[string]struct{}{
	"us-east-1": {}, "us-east-2": {}, "us-west-1": {}, "us-west-2": {},
	"eu-west-1": {}, "eu-west-2": {}, "eu-west-3": {}, "eu-central-1": {},
	"ap-south-1": {}, "ap-southeast-1": {}, "ap-southeast-2": {},
	"ap-northeast-1": {}, "ap-northeast-2": {}, "sa-east-1": {}, "ca-central-1": {},
}

// collector accumulates violations and warnings during one validation pass.
type collector struct {
	violations []string
	warnings   []string
}

func (c *collector) violatef(format string, args ...any) {
	c.violations = append(c.violations, fmt.Sprintf(format, args...))
}

func (c *collector) warnf(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// Inputs validates raw step inputs and produces an immutable JobSpec.
// It is a pure function of its arguments: no network access, no environment
// reads. On failure it returns every violation found wrapped in a
// model.ValidationError; warnings are returned separately on both paths.
func Inputs(in config.Inputs, poller config.PollerConfig, queries core.QueryEvaluator) (*model.JobSpec, []string, error) {
	c := &collector{}

	checkRequired(in, c)

	if in.JobName != "" {
		checkJobName(in.JobName, c)
	}
	if in.RoleARN != "" && !roleARNRe.MatchString(in.RoleARN) {
		c.violatef("role-arn format is invalid, expected arn:aws:iam::account:role/role-name")
	}
	instanceType := DefaultInstanceType
	if in.InstanceType != "" {
		instanceType = in.InstanceType
		if !instanceTypeRe.MatchString(in.InstanceType) {
			c.violatef("instance-type %q does not match the expected SageMaker format", in.InstanceType)
		}
	}

	instanceCount := parseBoundedInt(c, "instance-count", in.InstanceCount, DefaultInstanceCount, 1, 100)
	volumeSize := parseBoundedInt(c, "volume-size", in.VolumeSize, DefaultVolumeSizeGB, 1, 16384)
	maxRuntime := parseBoundedInt(c, "max-runtime", in.MaxRuntime, DefaultMaxRuntimeSeconds, 1, 432000)
	checkInterval := parseBoundedInt(c, "check-interval", in.CheckInterval, DefaultCheckInterval, 10, 3600)

	channels := parseInputDataConfig(c, in.InputDataConfig)
	outputPath := parseOutputDataConfig(c, in.OutputDataConfig)
	hyperParams := parseStringMap(c, "hyperparameters", in.HyperParameters)
	environment := parseStringMap(c, "environment", in.Environment)
	tags := parseStringMap(c, "tags", in.Tags)
	vpc := parseVPCConfig(c, in.VPCConfig)
	outputQueries := parseOutputQueries(c, in.OutputQueries, queries)

	if in.Region != "" {
		if _, ok := commonRegions[in.Region]; !ok {
			c.warnf("region %q is not in the list of common regions, verify it supports SageMaker", in.Region)
		}
	}

	if len(c.violations) > 0 {
		return nil, c.warnings, &model.ValidationError{Violations: c.violations}
	}

	spec := &model.JobSpec{
		JobName:           in.JobName,
		TrainingImage:     in.AlgorithmSpecification,
		RoleARN:           in.RoleARN,
		InstanceType:      instanceType,
		InstanceCount:     instanceCount,
		VolumeSizeGB:      volumeSize,
		MaxRuntimeSeconds: maxRuntime,
		InputChannels:     channels,
		OutputPath:        outputPath,
		HyperParameters:   hyperParams,
		Environment:       environment,
		VPC:               vpc,
		Tags:              tags,
		OutputQueries:     outputQueries,
		Wait: model.WaitPolicy{
			Enabled:      waitEnabled(in.WaitForCompletion),
			PollInterval: time.Duration(checkInterval) * time.Second,
			MaxWait:      poller.MaxWait,
		},
	}
	return spec, c.warnings, nil
}

func checkRequired(in config.Inputs, c *collector) {
	required := []struct {
		name  string
		value string
	}{
		{"job-name", in.JobName},
		{"algorithm-specification", in.AlgorithmSpecification},
		{"role-arn", in.RoleARN},
		{"input-data-config", in.InputDataConfig},
		{"output-data-config", in.OutputDataConfig},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			c.violatef("required field %q is missing or empty", f.name)
		}
	}
}

func checkJobName(name string, c *collector) {
	ok := true
	if !jobNameRe.MatchString(name) {
		c.violatef("job-name must be 1-63 characters long and contain only alphanumeric characters and hyphens")
		ok = false
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		c.violatef("job-name cannot start or end with a hyphen")
		ok = false
	}
	if !ok {
		if s := util.SanitizeJobName(name); s != name {
			c.warnf("job-name %q is invalid, a sanitized equivalent would be %q", name, s)
		}
	}
}

// parseBoundedInt parses an optional positive-integer input, recording a
// field-specific violation on parse or range failure. The default is
// returned whenever the value is absent or invalid.
func parseBoundedInt(c *collector, field, value string, def, minVal, maxVal int) int {
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		c.violatef("%s must be a valid integer", field)
		return def
	}
	if n < minVal || n > maxVal {
		c.violatef("%s must be between %d and %d", field, minVal, maxVal)
		return def
	}
	return n
}

// channelJSON mirrors the SageMaker-shaped channel objects the action
// documents for input-data-config.
type channelJSON struct {
	ChannelName string `json:"ChannelName"`
	DataSource  *struct {
		S3DataSource *struct {
			S3URI      string `json:"S3Uri"`
			S3DataType string `json:"S3DataType"`
		} `json:"S3DataSource"`
	} `json:"DataSource"`
	ContentType     string `json:"ContentType"`
	CompressionType string `json:"CompressionType"`
	InputMode       string `json:"InputMode"`
}

func parseInputDataConfig(c *collector, raw string) []model.InputChannel {
	if raw == "" {
		return nil
	}
	if !json.Valid([]byte(raw)) {
		c.violatef("input-data-config contains invalid JSON")
		return nil
	}
	var parsed []channelJSON
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		c.violatef("input-data-config must be a JSON array of channel objects")
		return nil
	}
	if len(parsed) == 0 {
		c.violatef("input-data-config must contain at least one channel")
		return nil
	}

	channels := make([]model.InputChannel, 0, len(parsed))
	seen := make(map[string]struct{}, len(parsed))
	for i, ch := range parsed {
		if ch.ChannelName == "" {
			c.violatef("input-data-config[%d] missing required field ChannelName", i)
		} else if _, dup := seen[ch.ChannelName]; dup {
			c.violatef("input-data-config[%d] duplicate channel name %q", i, ch.ChannelName)
		} else {
			seen[ch.ChannelName] = struct{}{}
		}
		if ch.DataSource == nil {
			c.violatef("input-data-config[%d] missing required field DataSource", i)
			continue
		}
		if ch.DataSource.S3DataSource == nil || ch.DataSource.S3DataSource.S3URI == "" {
			c.violatef("input-data-config[%d] S3DataSource missing S3Uri", i)
			continue
		}
		channels = append(channels, model.InputChannel{
			Name:            ch.ChannelName,
			S3URI:           ch.DataSource.S3DataSource.S3URI,
			S3DataType:      ch.DataSource.S3DataSource.S3DataType,
			ContentType:     ch.ContentType,
			CompressionType: ch.CompressionType,
			InputMode:       ch.InputMode,
		})
	}
	return channels
}

func parseOutputDataConfig(c *collector, raw string) string {
	if raw == "" {
		return ""
	}
	if !json.Valid([]byte(raw)) {
		c.violatef("output-data-config contains invalid JSON")
		return ""
	}
	var parsed struct {
		S3OutputPath *string `json:"S3OutputPath"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		c.violatef("output-data-config must be a JSON object")
		return ""
	}
	if parsed.S3OutputPath == nil || *parsed.S3OutputPath == "" {
		c.violatef("output-data-config missing required field S3OutputPath")
		return ""
	}
	if !strings.HasPrefix(*parsed.S3OutputPath, "s3://") {
		c.violatef("output-data-config S3OutputPath must be a valid S3 URI starting with s3://")
		return ""
	}
	return *parsed.S3OutputPath
}

// parseStringMap decodes a JSON object whose values are scalars (string,
// number, boolean) into a string map, coercing non-strings the way the
// action documents. Numbers keep their literal text.
func parseStringMap(c *collector, field, raw string) map[string]string {
	if raw == "" {
		return nil
	}
	if !json.Valid([]byte(raw)) {
		c.violatef("%s contains invalid JSON", field)
		return nil
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var parsed map[string]any
	if err := dec.Decode(&parsed); err != nil {
		c.violatef("%s must be a JSON object", field)
		return nil
	}
	if len(parsed) == 0 {
		return nil
	}
	out := make(map[string]string, len(parsed))
	for k, v := range parsed {
		switch val := v.(type) {
		case string:
			out[k] = val
		case json.Number:
			out[k] = val.String()
		case bool:
			out[k] = strconv.FormatBool(val)
		default:
			c.violatef("%s value for key %q must be a scalar (string, number, or boolean)", field, k)
		}
	}
	return out
}

func parseVPCConfig(c *collector, raw string) *model.VPCConfig {
	if raw == "" {
		return nil
	}
	if !json.Valid([]byte(raw)) {
		c.violatef("vpc-config contains invalid JSON")
		return nil
	}
	var parsed struct {
		SecurityGroupIDs *[]string `json:"SecurityGroupIds"`
		Subnets          *[]string `json:"Subnets"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		c.violatef("vpc-config must be a JSON object with SecurityGroupIds and Subnets arrays")
		return nil
	}
	valid := true
	if parsed.SecurityGroupIDs == nil {
		c.violatef("vpc-config missing required field SecurityGroupIds")
		valid = false
	}
	if parsed.Subnets == nil {
		c.violatef("vpc-config missing required field Subnets")
		valid = false
	}
	if !valid {
		return nil
	}
	return &model.VPCConfig{
		SecurityGroupIDs: *parsed.SecurityGroupIDs,
		Subnets:          *parsed.Subnets,
	}
}

func parseOutputQueries(c *collector, raw string, queries core.QueryEvaluator) map[string]string {
	if raw == "" {
		return nil
	}
	if !json.Valid([]byte(raw)) {
		c.violatef("output-queries contains invalid JSON")
		return nil
	}
	var parsed map[string]string
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		c.violatef("output-queries must be a JSON object mapping output names to JMESPath expressions")
		return nil
	}
	if queries != nil {
		for name, expr := range parsed {
			if err := queries.Validate(expr); err != nil {
				c.violatef("output-queries[%s] is not a valid JMESPath expression: %v", name, err)
			}
		}
	}
	return parsed
}

// waitEnabled preserves the permissive parse the action has always had:
// an empty input defaults to waiting, and anything other than a
// case-insensitive "true" disables it.
func waitEnabled(v string) bool {
	if v == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(v), "true")
}
