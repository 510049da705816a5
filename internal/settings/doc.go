// Package settings holds the generation configuration and its YAML
// persistence.
//
// Settings live in a file named ReflectionGeneratorConfig.yaml. The file must
// sit in a directory called "Resources", following the layout the host
// editor loads resources from. A missing file yields Default().
package settings
