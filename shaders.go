// SPDX-License-Identifier: Unlicense OR MIT

package eguid3d11

import "github.com/egui-go/egui-d3d11/backend"

// The fixed shader pair. Vertices arrive already transformed to
// normalized device coordinates; the pixel shader modulates the vertex
// color with the bound texture. Blending happens in gamma space, which
// is why the render target must be viewed as non-sRGB-aware.
const shaderHLSL = `
struct vs_input {
    float2 pos   : POSITION;
    float2 uv    : TEXCOORD0;
    float4 color : COLOR0;
};

struct ps_input {
    float4 pos   : SV_POSITION;
    float2 uv    : TEXCOORD0;
    float4 color : COLOR0;
};

ps_input vs_main(vs_input input) {
    ps_input output;
    output.pos = float4(input.pos, 0.0, 1.0);
    output.uv = input.uv;
    output.color = input.color;
    return output;
}

Texture2D    tex : register(t0);
SamplerState smp : register(s0);

float4 ps_main(ps_input input) : SV_TARGET {
    return input.color * tex.Sample(smp, input.uv);
}
`

var (
	vertexShaderSrc = backend.ShaderSource{
		Name:   "egui_vs",
		Entry:  "vs_main",
		Target: "vs_5_0",
		HLSL:   shaderHLSL,
	}
	pixelShaderSrc = backend.ShaderSource{
		Name:   "egui_ps",
		Entry:  "ps_main",
		Target: "ps_5_0",
		HLSL:   shaderHLSL,
	}
)

// vertexInputs matches the vertex struct in mesh.go.
var vertexInputs = []backend.InputDesc{
	{Semantic: "POSITION", Format: backend.VertexFloat2, Offset: 0},
	{Semantic: "TEXCOORD", Format: backend.VertexFloat2, Offset: 8},
	{Semantic: "COLOR", Format: backend.VertexFloat4, Offset: 16},
}

// The fixed pipeline state descriptors, immutable configuration
// created once per Renderer.
var (
	rasterizerDesc = backend.RasterizerDesc{
		ScissorEnable: true,
	}
	samplerDesc = backend.SamplerDesc{
		Filter:      backend.FilterLinear,
		AddressU:    backend.AddressBorder,
		AddressV:    backend.AddressBorder,
		AddressW:    backend.AddressBorder,
		BorderColor: [4]float32{1, 1, 1, 1},
	}
	// Premultiplied-alpha over.
	blendDesc = backend.BlendDesc{
		Enable:        true,
		SrcBlend:      backend.BlendOne,
		DstBlend:      backend.BlendInvSrcAlpha,
		SrcBlendAlpha: backend.BlendInvDestAlpha,
		DstBlendAlpha: backend.BlendOne,
	}
)
