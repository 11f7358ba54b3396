package ledger

import "encoding/json"

// jsonCodec satisfies grpc's encoding.Codec. The ledger server negotiates a
// JSON payload codec, so the client forces it on every call instead of the
// default proto codec.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string { return "json" }
