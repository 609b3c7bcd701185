package primitives

import rl "github.com/gen2brain/raylib-go/raylib"

// Lighting terms shared by every placed primitive.
var (
	ambientTerm = [4]float32{0.25, 0.26, 0.3, 1.0}
	lightColor  = [3]float32{1.0, 0.98, 0.95}
)

const (
	lightIntensity   = float32(0.8)
	specularPower    = float32(32.0)
	specularStrength = float32(0.25)
)

// litVS/litFS: directional light + ambient + Blinn specular, tinted by the material's albedo color
// (colDiffuse), so one material per shape serves every object color.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = colDiffuse.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * colDiffuse.rgb;
  float spec = pow(max(dot(N, normalize(L + V)), 0.0), specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, colDiffuse.a);
}
`
)

// litShader is compiled once per registry; the uniforms below are pushed each frame.
type litShader struct {
	shader  rl.Shader
	viewLoc int32
	dirLoc  int32
}

func loadLitShader() litShader {
	s := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(s) {
		return litShader{shader: s, viewLoc: -1, dirLoc: -1}
	}
	ls := litShader{
		shader:  s,
		viewLoc: rl.GetShaderLocation(s, "viewPos"),
		dirLoc:  rl.GetShaderLocation(s, "lightDir"),
	}
	amb := ambientTerm
	col := lightColor
	if loc := rl.GetShaderLocation(s, "ambient"); loc >= 0 {
		rl.SetShaderValueV(s, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(s, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(s, loc, col[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(s, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(s, loc, []float32{lightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(s, "specularPower"); loc >= 0 {
		rl.SetShaderValue(s, loc, []float32{specularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(s, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(s, loc, []float32{specularStrength}, rl.ShaderUniformFloat)
	}
	return ls
}

// setView pushes camera position and light direction (cgo-safe: local arrays).
func (ls litShader) setView(viewPos, lightDir [3]float32) {
	if !rl.IsShaderValid(ls.shader) {
		return
	}
	vp := viewPos
	ld := lightDir
	if ls.viewLoc >= 0 {
		rl.SetShaderValueV(ls.shader, ls.viewLoc, vp[:], rl.ShaderUniformVec3, 1)
	}
	if ls.dirLoc >= 0 {
		rl.SetShaderValueV(ls.shader, ls.dirLoc, ld[:], rl.ShaderUniformVec3, 1)
	}
}
