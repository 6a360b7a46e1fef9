package unmarshal

// UnmarshalOption configures an Unmarshaller.
type UnmarshalOption func(*Unmarshaller)

// WithStrict toggles strict mode: any §10.1 extension node kind (nan,
// posinf, neginf, bigint, typedarray), and any kind the decoder does not
// recognize at all, is rejected with ErrUnknownKind instead of being
// decoded. Enabled by default; pass false to decode permissively, in
// which case extension kinds are accepted and any genuinely unrecognized
// kind decodes to object.Undefined instead of failing the whole
// document.
func WithStrict(enabled bool) UnmarshalOption {
	return func(u *Unmarshaller) { u.strict = enabled }
}
