package packaging

// DefaultConfigJSON is the configuration written on first install: an empty
// rule set the daemon starts from. An existing config file is never
// inspected or rewritten, so this content only ever lands on a host whose
// config directory did not exist.
const DefaultConfigJSON = "{\"rules\": []}\n"
