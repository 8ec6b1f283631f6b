package email

import "html/template"

const footer = `
<p>Dúvidas? Entre em contato:</p>
<p>📧 Email: contato@3dstuff.com.br</p>
{{if .WhatsAppLabel}}<p>📱 WhatsApp: {{.WhatsAppLabel}}</p>{{end}}
<hr>
<p>Este email foi enviado automaticamente pela <strong>3D Stuff</strong></p>
<p>Transformamos ideias em realidade através da impressão 3D ✨</p>
`

const approvedTemplate = `<html><body style="font-family: Arial, sans-serif; color: #333;">
<h1>🎉 Pedido Confirmado!</h1>
<p><strong>Olá, {{.CustomerName}}!</strong></p>
<p>Ficamos felizes em confirmar que seu pedido foi aprovado e já está sendo processado!</p>
<h3>📦 Detalhes do Produto</h3>
<p><strong>Produto:</strong> {{.ProductName}}</p>
<p><strong>Quantidade:</strong> {{.Quantity}}</p>
<p><strong>Valor:</strong> {{.Amount}}</p>
<p><strong>Forma de pagamento:</strong> {{.MethodLabel}}</p>
<p><strong>ID do Pagamento:</strong> {{.PaymentID}}</p>
<h3>📋 Próximos passos:</h3>
<ul>
<li>✅ Pagamento confirmado</li>
<li>🏭 Produto entrará em produção em até 24h</li>
<li>📱 Você receberá atualizações por WhatsApp</li>
<li>🚚 Entrega estimada: 5-7 dias úteis</li>
</ul>
{{if .WhatsAppURL}}<p><a href="{{.WhatsAppURL}}">💬 Falar no WhatsApp</a></p>{{end}}
` + footer + `</body></html>`

const pendingTemplate = `<html><body style="font-family: Arial, sans-serif; color: #333;">
<h1>⏳ Aguardando Pagamento</h1>
<p><strong>Olá, {{.CustomerName}}!</strong></p>
<p>Recebemos seu pedido e estamos aguardando a confirmação do pagamento.</p>
<h3>📋 Detalhes do Pedido</h3>
<p><strong>Produto:</strong> {{.ProductName}}</p>
<p><strong>Valor:</strong> {{.Amount}}</p>
<p><strong>Forma de pagamento:</strong> {{.MethodLabel}}</p>
<p><strong>ID do Pedido:</strong> {{.PaymentID}}</p>
{{if eq .Method "pix"}}
<h4>💰 Instruções para PIX:</h4>
<p>• O PIX tem validade de 30 minutos</p>
<p>• Após o pagamento, a confirmação é automática</p>
{{if .QRCode}}<p><strong>PIX copia e cola:</strong></p><p style="word-break: break-all;"><code>{{.QRCode}}</code></p>{{end}}
{{else if eq .Method "boleto"}}
<h4>🧾 Instruções para Boleto:</h4>
<p>• O boleto tem vencimento em 7 dias úteis</p>
<p>• Pode ser pago em qualquer banco ou lotérica</p>
<p>• A confirmação pode levar até 2 dias úteis</p>
{{if .Barcode}}<p><strong>Código de barras:</strong> {{.Barcode}}</p>{{end}}
{{end}}
{{if .TicketURL}}<p><a href="{{.TicketURL}}">Abrir instruções de pagamento</a></p>{{end}}
<p>Assim que recebermos a confirmação do pagamento, você receberá um novo email e começaremos a produção do seu produto!</p>
` + footer + `</body></html>`

var (
	approvedHTML = template.Must(template.New("approved").Parse(approvedTemplate))
	pendingHTML  = template.Must(template.New("pending").Parse(pendingTemplate))
)
