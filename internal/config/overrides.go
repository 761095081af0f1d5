package config

// Overrides carries optional command-line replacements for base fields. A nil
// field leaves the loaded value alone.
type Overrides struct {
	HPEAddr              *string
	HeadDetectionAddr    *string
	GestureDetectionAddr *string
	PicamAddr            *string
	PoolSize             *uint
}

// Empty reports whether no override is set.
func (o Overrides) Empty() bool {
	return o.HPEAddr == nil && o.HeadDetectionAddr == nil && o.GestureDetectionAddr == nil &&
		o.PicamAddr == nil && o.PoolSize == nil
}

// Apply replaces each field for which o holds a value and returns the source
// keys it replaced. Applying the same overrides again changes nothing.
func (b *BaseConfig) Apply(o Overrides) []string {
	var applied []string
	if o.HPEAddr != nil {
		b.HPEAddr = *o.HPEAddr
		applied = append(applied, "hpe_addr")
	}
	if o.HeadDetectionAddr != nil {
		b.HeadDetectionAddr = *o.HeadDetectionAddr
		applied = append(applied, "head_detection_addr")
	}
	if o.GestureDetectionAddr != nil {
		b.GestureDetectionAddr = *o.GestureDetectionAddr
		applied = append(applied, "gesture_detection_addr")
	}
	if o.PicamAddr != nil {
		b.PicamAddr = *o.PicamAddr
		applied = append(applied, "picam_addr")
	}
	if o.PoolSize != nil {
		b.PoolSize = *o.PoolSize
		applied = append(applied, "pool_size")
	}
	return applied
}

// ApplyOverrides layers o on top of the loaded base configuration.
func (c *Config) ApplyOverrides(o Overrides) []string {
	return c.Base.Apply(o)
}
