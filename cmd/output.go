package cmd

import (
	"strconv"

	"github.com/fzft/go-flatmap/log"
	"github.com/fzft/go-flatmap/resp"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// render turns a reply into the bytes printed for the current output mode.
func (cfg *CliConfig) render(reply resp.Node) []byte {
	if cfg.Output == OutputRESP {
		return resp.Encoder{Proto: cfg.Proto}.Encode(reply)
	}

	reply = lowerTo(cfg.Proto, reply)
	switch cfg.Output {
	case OutputRaw:
		return []byte(resp.FormatRaw(reply))
	case OutputYAML:
		out, err := yaml.Marshal(yamlNode(reply))
		if err != nil {
			log.Logger.Warn("yaml output failed", zap.Error(err))
			return []byte(resp.FormatRaw(reply))
		}
		return append([]byte("---\n"), out...)
	default:
		return []byte(resp.Format(reply))
	}
}

// lowerTo shows a reply the way a client speaking proto would receive it.
// Under RESP2 that means hashes print as flat arrays.
func lowerTo(proto int, reply resp.Node) resp.Node {
	if proto >= resp.RESP3 {
		return reply
	}
	lowered, _, err := resp.Parse(resp.Encoder{Proto: proto}.Encode(reply))
	if err != nil {
		log.Logger.Warn("reply did not survive RESP2 encoding", zap.Error(err))
		return reply
	}
	return lowered
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// yamlNode builds the document by hand so hash fields keep their order.
func yamlNode(n resp.Node) *yaml.Node {
	switch v := n.(type) {
	case resp.SimpleString:
		return scalar("!!str", v.Value)
	case resp.BlobString:
		return scalar("!!str", v.Value)
	case resp.VerbatimString:
		return scalar("!!str", v.Value)
	case resp.BigNum:
		return scalar("!!str", v.Value)
	case resp.Integer:
		return scalar("!!int", strconv.Itoa(v.Value))
	case resp.Double:
		return scalar("!!float", strconv.FormatFloat(v.Value, 'g', -1, 64))
	case resp.Boolean:
		return scalar("!!bool", strconv.FormatBool(v.Value))
	case resp.Error:
		return yamlError(v.Message)
	case resp.BlobError:
		return yamlError(v.Message)
	case resp.Array:
		return yamlSeq(v.Elements)
	case resp.Set:
		return yamlSeq(v.Elements)
	case resp.Push:
		return yamlSeq(v.Elements)
	case resp.Map:
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, pair := range v.Elements {
			m.Content = append(m.Content, yamlNode(pair.Key), yamlNode(pair.Value))
		}
		return m
	}
	return scalar("!!null", "null")
}

func yamlSeq(elems []resp.Node) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, e := range elems {
		seq.Content = append(seq.Content, yamlNode(e))
	}
	return seq
}

func yamlError(msg string) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: []*yaml.Node{
		scalar("!!str", "error"), scalar("!!str", msg),
	}}
}
